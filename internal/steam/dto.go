package steam

// Wire types for the Steam Web API responses we consume.

// ownedGamesEnvelope wraps GetOwnedGames; a private profile yields an empty
// response object with no games key at all
type ownedGamesEnvelope struct {
	Response ownedGamesResponse `json:"response"`
}

type ownedGamesResponse struct {
	GameCount int            `json:"game_count"`
	Games     []ownedGameDTO `json:"games"`
}

type ownedGameDTO struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
}

// userStatsEnvelope wraps GetUserStatsForGame
type userStatsEnvelope struct {
	PlayerStats userStatsDTO `json:"playerstats"`
}

type userStatsDTO struct {
	SteamID      string           `json:"steamID"`
	GameName     string           `json:"gameName"`
	Achievements []achievementDTO `json:"achievements"`
}

type achievementDTO struct {
	Name     string `json:"name"`
	Achieved int    `json:"achieved"`
}
