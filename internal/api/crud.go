package api

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"vendorbook/v/internal/store"
)

// Users. Management of accounts is admin-only.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	users, err := h.store.GetAll(store.TableUsers)
	if err != nil {
		h.internalError(w, "unable to list users", err)
		return
	}
	for _, u := range users {
		delete(u, "password")
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	var data store.Row
	if err := decodeJSON(r, &data); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	username, _ := data["username"].(string)
	password, _ := data["password"].(string)
	role, _ := data["role"].(string)
	if username == "" || password == "" || role == "" {
		respondError(w, http.StatusBadRequest, "username, password and role are required")
		return
	}
	if role != "admin" && role != "employee" {
		respondError(w, http.StatusBadRequest, "role must be admin or employee")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalError(w, "unable to secure password", err)
		return
	}
	data["password"] = string(hashed)

	user, err := h.store.Add(store.TableUsers, data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	delete(user, "password")
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var updates store.Row
	if err := decodeJSON(r, &updates); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if raw, ok := updates["password"]; ok {
		password, ok := raw.(string)
		if !ok || password == "" {
			respondError(w, http.StatusBadRequest, "password must be a non-empty string")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			h.internalError(w, "unable to secure password", err)
			return
		}
		updates["password"] = string(hashed)
	}

	user, err := h.store.Update(store.TableUsers, id, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	delete(user, "password")
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	h.deleteByID(w, r, store.TableUsers, "user not found")
}

// Vendors

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	h.listTable(w, store.TableVendors, "unable to list vendors")
}

func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, store.TableVendors, "vendor not found")
}

func (h *Handler) createVendor(w http.ResponseWriter, r *http.Request) {
	var data store.Row
	if err := decodeJSON(r, &data); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if name, _ := data["name"].(string); name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	vendor, err := h.store.Add(store.TableVendors, data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, vendor)
}

func (h *Handler) updateVendor(w http.ResponseWriter, r *http.Request) {
	h.updateByID(w, r, store.TableVendors, "vendor not found")
}

func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, store.TableVendors, "vendor not found")
}

// Products

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.GetProductsWithInventory()
	if err != nil {
		h.internalError(w, "unable to list products", err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, store.TableProducts, "product not found")
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var data store.Row
	if err := decodeJSON(r, &data); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	code, _ := data["code"].(string)
	name, _ := data["name"].(string)
	if code == "" || name == "" {
		respondError(w, http.StatusBadRequest, "code and name are required")
		return
	}
	if _, ok := data["price"]; !ok {
		respondError(w, http.StatusBadRequest, "price is required")
		return
	}
	product, err := h.store.Add(store.TableProducts, data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	h.updateByID(w, r, store.TableProducts, "product not found")
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, store.TableProducts, "product not found")
}

// Transactions (read-only ledger)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	h.listTable(w, store.TableTransactions, "unable to list transactions")
}

// Shared table helpers

func (h *Handler) listTable(w http.ResponseWriter, table store.Table, errMsg string) {
	rows, err := h.store.GetAll(table)
	if err != nil {
		h.internalError(w, errMsg, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request, table store.Table, notFound string) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	row, err := h.store.GetByID(table, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, notFound)
			return
		}
		h.internalError(w, "unable to load record", err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *Handler) updateByID(w http.ResponseWriter, r *http.Request, table store.Table, notFound string) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var updates store.Row
	if err := decodeJSON(r, &updates); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	row, err := h.store.Update(table, id, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, notFound)
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, table store.Table, notFound string) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	removed, err := h.store.Delete(table, id)
	if err != nil {
		h.internalError(w, "unable to delete record", err)
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, notFound)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
