package web

import (
	"net/http"
	"time"

	"po-reporting/internal/core"

	"github.com/go-chi/chi/v5"
)

// listOrders handles GET /api/v1/purchase-orders.
// Query: page, perPage (0 = no pagination), division, itemDesc,
// arrivalDate, arrivalDateFrom, arrivalDateTo.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	filters := core.OrderFilters{
		Division:        q.Get("division"),
		ItemDesc:        q.Get("itemDesc"),
		ArrivalDate:     q.Get("arrivalDate"),
		ArrivalDateFrom: q.Get("arrivalDateFrom"),
		ArrivalDateTo:   q.Get("arrivalDateTo"),
	}

	result, err := h.svc.ListPurchaseOrders(r.Context(), queryNumber(q, "page"), queryNumber(q, "perPage"), filters)
	if err != nil {
		writeError(w, r, "failed to list purchase orders", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeResponse(w, result.Lines, started, &result.Pagination)
}

// listDivisions handles GET /api/v1/divisions.
func (h *Handler) listDivisions(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	result, err := h.svc.ListDivisions(r.Context())
	if err != nil {
		writeError(w, r, "failed to list divisions", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeResponse(w, result.Divisions, started, nil)
}

// todayOrders handles GET /api/v1/purchase-orders/today.
// Query: division (optional exact match).
func (h *Handler) todayOrders(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	result, err := h.svc.ListTodayOrders(r.Context(), r.URL.Query().Get("division"))
	if err != nil {
		writeError(w, r, "failed to list today's orders", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeResponse(w, result.Entries, started, nil)
}

// orderCalendar handles GET /api/v1/calendar.
// Query: month, year (default: current UTC month), division, page, perPage.
// Year is range-checked here; the engine clamps month itself.
func (h *Handler) orderCalendar(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	now := time.Now().UTC()
	filters := core.CalendarFilters{
		Month:    queryInt(q, "month", int(now.Month())),
		Year:     queryInt(q, "year", now.Year()),
		Division: q.Get("division"),
	}
	if filters.Year < 1900 {
		writeError(w, r, "year must be 1900 or later", "INVALID_YEAR", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetOrderCalendar(r.Context(), queryNumber(q, "page"), queryNumber(q, "perPage"), filters)
	if err != nil {
		writeError(w, r, "failed to load order calendar", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeResponse(w, result.Entries, started, &result.Pagination)
}

// getOrder handles GET /api/v1/purchase-orders/{poNo}.
// Returns every line of the order; 404 when no line exists.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	poNo := chi.URLParam(r, "poNo")

	result, err := h.svc.GetPurchaseOrder(r.Context(), poNo)
	if err != nil {
		writeError(w, r, "failed to load purchase order", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	if !result.Found() {
		writeError(w, r, "purchase order not found", "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeResponse(w, result.Lines, started, nil)
}
