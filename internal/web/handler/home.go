package handler

import (
	"net/http"

	"github.com/questgate/steamqual/internal/web/middleware"
	"github.com/questgate/steamqual/internal/web/templates"
)

// HomeHandler handles the landing page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page with the sign-in options
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	steamID := middleware.GetSteamID(r.Context())
	flash := middleware.GetFlash(r.Context())

	data := templates.HomeData{
		PageData: templates.PageData{
			Title:    "Home",
			SteamID:  steamID,
			LoggedIn: steamID != "",
			Flash:    flash,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
