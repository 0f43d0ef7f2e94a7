package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Secret      string
	DatabaseDSN string
	HTTPPort    string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = filepath.Join(dataDir(), "vendor-management.db")
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{Secret: secret, DatabaseDSN: dsn, HTTPPort: port}
}

// dataDir resolves where the database file lives: an explicit DATA_DIR, the
// platform user config dir, or a local data/ folder in development.
func dataDir() string {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		if cfgDir, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(cfgDir, "vendorbook")
		} else {
			dir = "data"
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("unable to create data dir %s: %v, falling back to data/", dir, err)
		dir = "data"
		_ = os.MkdirAll(dir, 0o755)
	}
	return dir
}
