package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case CheckResult:
		o.printCheckResult(v)
	case GameList:
		o.printGameList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API)
type AuthResult struct {
	SteamID      string `json:"steam_id"`
	SessionToken string `json:"session_token"`
}

// Verdict response type
type Verdict struct {
	TotalHours           float64 `json:"total_hours"`
	TotalAchievements    int     `json:"total_achievements"`
	GamesOverOneHour     int     `json:"games_over_one_hour"`
	MostPlayedPercentage float64 `json:"most_played_percentage"`
	MostPlayedGame       string  `json:"most_played_game,omitempty"`
	HoursOk              bool    `json:"hours_ok"`
	AchievementsOk       bool    `json:"achievements_ok"`
	DiversityOk          bool    `json:"diversity_ok"`
	ConcentrationOk      bool    `json:"concentration_ok"`
	Valid                bool    `json:"valid"`
}

// CheckResult response type
type CheckResult struct {
	SteamID   string    `json:"steam_id"`
	Verdict   Verdict   `json:"verdict"`
	GameCount int       `json:"game_count"`
	CheckedAt time.Time `json:"checked_at"`
}

// Game response type
type Game struct {
	AppID           int    `json:"app_id"`
	Name            string `json:"name"`
	PlaytimeMinutes int    `json:"playtime_minutes"`
	Achievements    *int   `json:"achievements"`
}

// GameList response type
type GameList struct {
	SteamID string `json:"steam_id"`
	Games   []Game `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("SteamID: %s\n", a.SteamID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printCheckResult(c CheckResult) {
	fmt.Printf("SteamID: %s\n", c.SteamID)
	fmt.Printf("Games: %d\n", c.GameCount)
	fmt.Printf("Checked: %s\n", c.CheckedAt.Format(time.RFC1123))
	fmt.Println()

	v := c.Verdict
	fmt.Printf("  %s Total playtime: %.1f hours (need 100)\n", passMark(v.HoursOk), v.TotalHours)
	fmt.Printf("  %s Achievements: %d (need 10)\n", passMark(v.AchievementsOk), v.TotalAchievements)
	fmt.Printf("  %s Games over an hour: %d (need 3)\n", passMark(v.DiversityOk), v.GamesOverOneHour)
	concentration := fmt.Sprintf("%.1f%% in one game (limit 50%%)", v.MostPlayedPercentage)
	if v.MostPlayedGame != "" {
		concentration = fmt.Sprintf("%.1f%% in %s (limit 50%%)", v.MostPlayedPercentage, v.MostPlayedGame)
	}
	fmt.Printf("  %s Concentration: %s\n", passMark(v.ConcentrationOk), concentration)

	fmt.Println()
	if v.Valid {
		fmt.Println("Result: QUALIFIES")
	} else {
		fmt.Println("Result: DOES NOT QUALIFY")
	}
}

func (o *Output) printGameList(l GameList) {
	fmt.Printf("SteamID: %s\n", l.SteamID)
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		achStr := "n/a"
		if g.Achievements != nil {
			achStr = fmt.Sprintf("%d", *g.Achievements)
		}
		fmt.Printf("  - %s (app %d): %d min, %s achievements\n", g.Name, g.AppID, g.PlaytimeMinutes, achStr)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func passMark(ok bool) string {
	if ok {
		return "[pass]"
	}
	return "[fail]"
}
