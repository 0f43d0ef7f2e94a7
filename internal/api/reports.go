package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"vendorbook/v/internal/store"
)

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	var filter store.SalesReportFilter

	startDate := strings.TrimSpace(r.URL.Query().Get("startDate"))
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			respondError(w, http.StatusBadRequest, "startDate must be in YYYY-MM-DD format")
			return
		}
		filter.StartDate = startDate
	}

	endDate := strings.TrimSpace(r.URL.Query().Get("endDate"))
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			respondError(w, http.StatusBadRequest, "endDate must be in YYYY-MM-DD format")
			return
		}
		filter.EndDate = endDate
	}

	if vendorID := strings.TrimSpace(r.URL.Query().Get("vendorId")); vendorID != "" {
		id, err := strconv.ParseInt(vendorID, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, "vendorId must be a positive integer")
			return
		}
		filter.VendorID = id
	}

	filter.Status = strings.TrimSpace(r.URL.Query().Get("status"))

	rows, err := h.store.GetSalesReport(filter)
	if err != nil {
		h.internalError(w, "unable to fetch sales report", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handler) inventoryReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.GetInventoryReport()
	if err != nil {
		h.internalError(w, "unable to fetch inventory report", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
