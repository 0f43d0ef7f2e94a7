package api

import (
	"errors"
	"net/http"
	"strings"

	"vendorbook/v/domain"
	"vendorbook/v/internal/store"
)

func validEstimateStatus(status string) bool {
	return status == domain.EstimateStatusPending || status == domain.EstimateStatusPacked
}

func (h *Handler) listEstimates(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	var (
		estimates []domain.Estimate
		err       error
	)
	if status != "" {
		if !validEstimateStatus(status) {
			respondError(w, http.StatusBadRequest, "status must be pending or packed")
			return
		}
		estimates, err = h.store.GetEstimatesByStatus(status)
	} else {
		estimates, err = h.store.GetEstimates()
	}
	if err != nil {
		h.internalError(w, "unable to list estimates", err)
		return
	}
	respondJSON(w, http.StatusOK, estimates)
}

func (h *Handler) getEstimate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid estimate id")
		return
	}
	estimate, err := h.store.GetEstimateByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "estimate not found")
			return
		}
		h.internalError(w, "unable to load estimate", err)
		return
	}
	respondJSON(w, http.StatusOK, estimate)
}

func (h *Handler) createEstimate(w http.ResponseWriter, r *http.Request) {
	var input store.EstimateInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.EstimateNo == "" || input.Date == "" || input.CustomerName == "" {
		respondError(w, http.StatusBadRequest, "estimate_no, date and customer_name are required")
		return
	}
	if input.Status != "" && !validEstimateStatus(input.Status) {
		respondError(w, http.StatusBadRequest, "status must be pending or packed")
		return
	}

	estimate, err := h.store.AddEstimate(input)
	if err != nil {
		h.internalError(w, "unable to create estimate", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "id": estimate.ID})
}

func (h *Handler) updateEstimate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid estimate id")
		return
	}
	var input store.EstimateInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.EstimateNo == "" || input.Date == "" || input.CustomerName == "" {
		respondError(w, http.StatusBadRequest, "estimate_no, date and customer_name are required")
		return
	}
	if input.Status != "" && !validEstimateStatus(input.Status) {
		respondError(w, http.StatusBadRequest, "status must be pending or packed")
		return
	}

	if _, err := h.store.UpdateEstimate(id, input); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "estimate not found")
			return
		}
		h.internalError(w, "unable to update estimate", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

func (h *Handler) updateEstimateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid estimate id")
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validEstimateStatus(payload.Status) {
		respondError(w, http.StatusBadRequest, "status must be pending or packed")
		return
	}

	if err := h.store.UpdateEstimateStatus(id, payload.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "estimate not found")
			return
		}
		h.internalError(w, "unable to update estimate status", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": id, "status": payload.Status})
}

func (h *Handler) deleteEstimate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid estimate id")
		return
	}
	removed, err := h.store.DeleteEstimate(id)
	if err != nil {
		h.internalError(w, "unable to delete estimate", err)
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, "estimate not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
