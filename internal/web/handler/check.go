package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/checker"
	"github.com/questgate/steamqual/internal/web/middleware"
	"github.com/questgate/steamqual/internal/web/templates"
)

// CheckHandler handles the qualification results pages
type CheckHandler struct {
	checkerService checker.ServiceInterface
	logger         *slog.Logger
}

// NewCheckHandler creates a new CheckHandler
func NewCheckHandler(checkerService checker.ServiceInterface, logger *slog.Logger) *CheckHandler {
	return &CheckHandler{
		checkerService: checkerService,
		logger:         logger,
	}
}

// View shows the qualification result for the signed-in account, running a
// check if no recent result is cached
func (h *CheckHandler) View(w http.ResponseWriter, r *http.Request) {
	steamID := middleware.GetSteamID(r.Context())

	result, err := h.checkerService.Check(r.Context(), steamID, false)
	if err != nil {
		h.renderError(w, r, steamID, err)
		return
	}

	h.renderResults(w, r, result)
}

// Refresh re-runs the check, bypassing any cached result
func (h *CheckHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	steamID := middleware.GetSteamID(r.Context())

	if _, err := h.checkerService.Check(r.Context(), steamID, true); err != nil {
		h.renderError(w, r, steamID, err)
		return
	}

	http.Redirect(w, r, "/check", http.StatusSeeOther)
}

func (h *CheckHandler) renderResults(w http.ResponseWriter, r *http.Request, result *model.CheckResult) {
	data := templates.ResultsData{
		PageData: templates.PageData{
			Title:    "Results",
			SteamID:  result.SteamID,
			LoggedIn: true,
			Flash:    middleware.GetFlash(r.Context()),
		},
		Result: result,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Results(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *CheckHandler) renderError(w http.ResponseWriter, r *http.Request, steamID model.SteamID, err error) {
	data := templates.ErrorData{
		PageData: templates.PageData{
			Title:    "Error",
			SteamID:  steamID,
			LoggedIn: true,
			Flash:    middleware.GetFlash(r.Context()),
		},
	}
	status := http.StatusOK

	switch {
	case errors.Is(err, model.ErrProfilePrivate):
		data.Heading = "Game details are private"
		data.Detail = "Steam reported no visible games for this account. " +
			"Set 'Game details' to public in your Steam privacy settings, " +
			"then try again."
		data.CanRetry = true
	case errors.Is(err, model.ErrSteamUnavailable):
		status = http.StatusBadGateway
		data.Heading = "Steam is not responding"
		data.Detail = "We could not reach the Steam servers. This is usually temporary."
		data.CanRetry = true
	default:
		h.logger.Error("qualification check failed",
			slog.String("steam_id", string(steamID)),
			slog.Any("error", err),
		)
		status = http.StatusInternalServerError
		data.Heading = "Something went wrong"
		data.Detail = "The check could not be completed. Please try again later."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Error(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
