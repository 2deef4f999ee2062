package web

import (
	"encoding/json"
	"net/http"
	"time"

	"po-reporting/internal/core"
)

// apiResponse is the envelope every successful endpoint returns:
// {success, message, durationMs, data} plus pagination for paged data.
type apiResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	DurationMs int64                `json:"durationMs"`
	Data       any                  `json:"data"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

// writeResponse writes the success envelope with HTTP 200.
func writeResponse(w http.ResponseWriter, data any, started time.Time, pagination *core.PaginationMeta) {
	writeResponseStatus(w, data, "success", started, pagination, http.StatusOK)
}

// writeResponseStatus writes the envelope with an explicit message and status.
func writeResponseStatus(w http.ResponseWriter, data any, message string, started time.Time, pagination *core.PaginationMeta, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := apiResponse{
		Success:    status < http.StatusBadRequest,
		Message:    message,
		DurationMs: time.Since(started).Milliseconds(),
		Data:       data,
		Pagination: pagination,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
