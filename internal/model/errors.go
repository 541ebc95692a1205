package model

import "errors"

// Common errors used across the application
var (
	// Collection errors
	// ErrProfilePrivate means the owned-games list was inaccessible: the
	// profile's game details are private, or the account owns no visible
	// games. Fatal to the whole check.
	ErrProfilePrivate = errors.New("profile is private or owns no games")
	// ErrSteamUnavailable means the Steam API could not be reached or
	// answered with a server error. Retryable by the caller.
	ErrSteamUnavailable = errors.New("steam api unavailable")

	// Account errors
	ErrInvalidSteamID = errors.New("invalid steam id")

	// Storage errors
	ErrCheckNotFound   = errors.New("check result not found")
	ErrSessionNotFound = errors.New("session not found")
)
