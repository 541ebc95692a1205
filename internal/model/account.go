package model

// SteamID uniquely identifies a Steam account (64-bit ID rendered as a
// 17-digit decimal string)
type SteamID string

// ParseSteamID validates a raw identifier and returns it as a SteamID.
// Steam 64-bit IDs are always 17 decimal digits.
func ParseSteamID(raw string) (SteamID, error) {
	if len(raw) != 17 {
		return "", ErrInvalidSteamID
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", ErrInvalidSteamID
		}
	}
	return SteamID(raw), nil
}

// AppID identifies a game/application on the Steam store
type AppID int

// OwnedGame is one game in an account's library, with cumulative playtime.
// Built once per collection run and never mutated afterwards.
type OwnedGame struct {
	AppID           AppID
	Name            string // may be empty; Steam omits names for delisted apps
	PlaytimeMinutes int    // lifetime playtime in minutes
}

// GamingDataset is the normalized collection result for one account.
//
// Achievements maps AppID to the number of unlocked achievements for that
// game. A missing key means achievement data was unavailable for that game
// (private stats, no achievement schema, or a failed fetch) - which is
// deliberately distinct from a stored zero.
type GamingDataset struct {
	SteamID      SteamID
	Games        []OwnedGame
	Achievements map[AppID]int
}

// TotalMinutes sums playtime across the whole library
func (d *GamingDataset) TotalMinutes() int {
	total := 0
	for _, g := range d.Games {
		total += g.PlaytimeMinutes
	}
	return total
}
