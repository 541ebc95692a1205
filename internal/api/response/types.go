package response

import (
	"time"

	"github.com/questgate/steamqual/internal/model"
)

// Verdict represents a qualification verdict in API responses
type Verdict struct {
	TotalHours           float64 `json:"total_hours"`
	TotalAchievements    int     `json:"total_achievements"`
	GamesOverOneHour     int     `json:"games_over_one_hour"`
	MostPlayedPercentage float64 `json:"most_played_percentage"`
	MostPlayedGame       string  `json:"most_played_game,omitempty"`

	HoursOK         bool `json:"hours_ok"`
	AchievementsOK  bool `json:"achievements_ok"`
	DiversityOK     bool `json:"diversity_ok"`
	ConcentrationOK bool `json:"concentration_ok"`
	Valid           bool `json:"valid"`
}

// VerdictFromModel converts a model.QualificationVerdict to a response Verdict
func VerdictFromModel(v model.QualificationVerdict) Verdict {
	return Verdict{
		TotalHours:           v.TotalHours,
		TotalAchievements:    v.TotalAchievements,
		GamesOverOneHour:     v.GamesOverOneHour,
		MostPlayedPercentage: v.MostPlayedPercentage,
		MostPlayedGame:       v.MostPlayedGame,
		HoursOK:              v.HoursOK,
		AchievementsOK:       v.AchievementsOK,
		DiversityOK:          v.DiversityOK,
		ConcentrationOK:      v.ConcentrationOK,
		Valid:                v.Valid,
	}
}

// Check represents a completed qualification check
type Check struct {
	SteamID   string    `json:"steam_id"`
	Verdict   Verdict   `json:"verdict"`
	GameCount int       `json:"game_count"`
	CheckedAt time.Time `json:"checked_at"`
}

// CheckFromModel converts a model.CheckResult to a response Check
func CheckFromModel(r *model.CheckResult) Check {
	return Check{
		SteamID:   string(r.SteamID),
		Verdict:   VerdictFromModel(r.Verdict),
		GameCount: r.GameCount,
		CheckedAt: r.CheckedAt,
	}
}

// Game represents an owned game with its collected data
type Game struct {
	AppID           int    `json:"app_id"`
	Name            string `json:"name"`
	PlaytimeMinutes int    `json:"playtime_minutes"`
	// Achievements is nil when no achievement data could be fetched for the
	// game, as opposed to zero unlocked achievements
	Achievements *int `json:"achievements"`
}

// GameList is the response for the account games endpoint
type GameList struct {
	SteamID string `json:"steam_id"`
	Games   []Game `json:"games"`
}

// GameListFromModel converts a collected dataset to a response GameList
func GameListFromModel(ds *model.GamingDataset) GameList {
	games := make([]Game, len(ds.Games))
	for i, g := range ds.Games {
		games[i] = Game{
			AppID:           int(g.AppID),
			Name:            g.Name,
			PlaytimeMinutes: g.PlaytimeMinutes,
		}
		if count, ok := ds.Achievements[g.AppID]; ok {
			c := count
			games[i].Achievements = &c
		}
	}
	return GameList{
		SteamID: string(ds.SteamID),
		Games:   games,
	}
}

// Auth is the response for session creation
type Auth struct {
	SteamID      string `json:"steam_id"`
	SessionToken string `json:"session_token"`
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
