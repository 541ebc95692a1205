package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questgate/steamqual/internal/api/response"
	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/collector"
)

// GamesHandler handles the account library endpoint
type GamesHandler struct {
	collectorService collector.ServiceInterface
}

// NewGamesHandler creates a new GamesHandler
func NewGamesHandler(collectorService collector.ServiceInterface) *GamesHandler {
	return &GamesHandler{
		collectorService: collectorService,
	}
}

// List returns the collected library for an account, with per-game playtime
// and achievement counts
// GET /api/v1/accounts/{steam_id}/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	steamID, err := model.ParseSteamID(mux.Vars(r)["steam_id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	dataset, err := h.collectorService.Collect(r.Context(), steamID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(dataset))
}
