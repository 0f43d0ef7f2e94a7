package api

import (
	"errors"
	"net/http"

	"vendorbook/v/internal/store"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.GetAll(store.TableOrders)
	if err != nil {
		h.internalError(w, "unable to list orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.store.GetByID(store.TableOrders, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		h.internalError(w, "unable to load order", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) detailedOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.GetDetailedOrders()
	if err != nil {
		h.internalError(w, "unable to load detailed orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) todayOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.GetTodayOrders()
	if err != nil {
		h.internalError(w, "unable to load today's orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) pendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.GetOrdersByStatus("pending")
	if err != nil {
		h.internalError(w, "unable to load pending orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input store.OrderInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.OrderNumber == "" || input.Date == "" || input.VendorID <= 0 || input.Status == "" {
		respondError(w, http.StatusBadRequest, "order_number, date, vendor_id and status are required")
		return
	}
	if input.CreatedBy == 0 {
		input.CreatedBy = userIDFromContext(r)
	}

	order, err := h.store.CreateOrder(input)
	if err != nil {
		h.internalError(w, "unable to create order", err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var updates store.Row
	if err := decodeJSON(r, &updates); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.store.Update(store.TableOrders, id, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	removed, err := h.store.Delete(store.TableOrders, id)
	if err != nil {
		h.internalError(w, "unable to delete order", err)
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Inventory

type inventoryUpdateRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Location  string `json:"location"`
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.GetAll(store.TableInventory)
	if err != nil {
		h.internalError(w, "unable to list inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	item, err := h.store.UpdateInventory(req.ProductID, req.Quantity, req.Location, userIDFromContext(r))
	if err != nil {
		h.internalError(w, "unable to update inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
