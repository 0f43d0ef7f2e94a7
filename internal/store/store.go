package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a lookup or update matches no row.
var ErrNotFound = errors.New("record not found")

// Row is a flat column-to-value mapping, the shape the generic CRUD layer
// exchanges with callers.
type Row map[string]any

// Store provides access to the vendor management database.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store around an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that run their own queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// GetAll returns every row of the table.
func (s *Store) GetAll(table Table) ([]Row, error) {
	if _, err := specFor(table); err != nil {
		return nil, err
	}
	rows, err := s.db.Queryx(`SELECT * FROM ` + string(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, normalizeRow(row))
	}
	return out, rows.Err()
}

// GetByID returns the row with the given id, or ErrNotFound.
func (s *Store) GetByID(table Table, id int64) (Row, error) {
	if _, err := specFor(table); err != nil {
		return nil, err
	}
	return getByID(s.db, table, id)
}

// Add inserts the supplied columns and returns the stored row, re-read by
// its assigned id.
func (s *Store) Add(table Table, data Row) (Row, error) {
	if _, err := validateColumns(table, data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no columns to insert into %q", table)
	}

	columns := sortedKeys(data)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	args := make([]any, len(columns))
	for i, col := range columns {
		args[i] = data[col]
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, table, strings.Join(columns, ", "), placeholders)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return getByID(s.db, table, id)
}

// Update applies the supplied columns to the row with the given id, stamping
// updated_at on tables that carry it, and returns the refreshed row.
// ErrNotFound is returned when no row changed.
func (s *Store) Update(table Table, id int64, data Row) (Row, error) {
	spec, err := validateColumns(table, data)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no columns to update in %q", table)
	}

	columns := sortedKeys(data)
	sets := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for _, col := range columns {
		sets = append(sets, col+" = ?")
		args = append(args, data[col])
	}
	if spec.hasUpdatedAt {
		sets = append(sets, `updated_at = datetime('now')`)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, table, strings.Join(sets, ", "))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return getByID(s.db, table, id)
}

// Delete removes the row with the given id, reporting whether one existed.
func (s *Store) Delete(table Table, id int64) (bool, error) {
	if _, err := specFor(table); err != nil {
		return false, err
	}
	res, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func getByID(q sqlx.Queryer, table Table, id int64) (Row, error) {
	row := Row{}
	err := q.QueryRowx(fmt.Sprintf(`SELECT * FROM %s WHERE id = ?`, table), id).MapScan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return normalizeRow(row), nil
}

// normalizeRow converts driver byte slices to strings so rows marshal to
// JSON as text rather than base64.
func normalizeRow(row Row) Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}

func sortedKeys(data Row) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
