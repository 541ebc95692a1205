package handler

import (
	"encoding/json"
	"net/http"

	"github.com/questgate/steamqual/internal/api/middleware"
	"github.com/questgate/steamqual/internal/api/response"
	"github.com/questgate/steamqual/internal/services/auth"
)

// SessionHandler handles API session endpoints
type SessionHandler struct {
	authService *auth.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(authService *auth.Service) *SessionHandler {
	return &SessionHandler{
		authService: authService,
	}
}

type createSessionRequest struct {
	SteamID string `json:"steam_id"`
}

// Create starts a session for a SteamID
// POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	session, err := h.authService.ManualLogin(r.Context(), req.SteamID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Auth{
		SteamID:      string(session.SteamID),
		SessionToken: session.Token,
	})
}

// Delete invalidates the current session
// DELETE /api/v1/sessions
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session != nil {
		h.authService.InvalidateSession(r.Context(), session.Token)
	}
	response.NoContent(w)
}
