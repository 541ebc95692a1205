package model

import "time"

// Session is a logged-in visitor's session as persisted in storage.
// Only the hash of the session token is stored; the raw token lives in the
// visitor's cookie and nowhere else.
type Session struct {
	TokenHash string
	SteamID   SteamID
	CreatedAt time.Time
	ExpiresAt time.Time
}
