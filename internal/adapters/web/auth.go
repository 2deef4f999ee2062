package web

import (
	"encoding/json"
	"net/http"
	"time"
)

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// login handles POST /api/v1/auth/login.
// 400 when either field is missing or blank; 401 for any credential
// mismatch — unknown user, empty stored password, or wrong password all
// produce the same response so the failing part is not leaked.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	userID := bodyString(req.UserID)
	password := bodyString(req.Password)
	if userID == "" || password == "" {
		writeError(w, r, "userId and password are required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AuthenticateUser(r.Context(), userID, password)
	if err != nil {
		writeError(w, r, "failed to authenticate", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	if result == nil {
		writeError(w, r, "Invalid credentials", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}
	writeResponse(w, result, started, nil)
}
