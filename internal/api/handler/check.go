package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questgate/steamqual/internal/api/response"
	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/checker"
)

// CheckHandler handles qualification check endpoints
type CheckHandler struct {
	checkerService checker.ServiceInterface
}

// NewCheckHandler creates a new CheckHandler
func NewCheckHandler(checkerService checker.ServiceInterface) *CheckHandler {
	return &CheckHandler{
		checkerService: checkerService,
	}
}

// Get runs (or returns the cached) qualification check for an account
// GET /api/v1/checks/{steam_id}?refresh=1
func (h *CheckHandler) Get(w http.ResponseWriter, r *http.Request) {
	steamID, err := model.ParseSteamID(mux.Vars(r)["steam_id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	force := r.URL.Query().Get("refresh") == "1"

	result, err := h.checkerService.Check(r.Context(), steamID, force)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CheckFromModel(result))
}
