package model

import "time"

// CheckResult is a completed qualification check for one account.
// Stored so a repeated check within the cache window doesn't re-crawl the
// account's whole library.
type CheckResult struct {
	SteamID   SteamID
	Verdict   QualificationVerdict
	GameCount int // size of the owned-games list at collection time
	CheckedAt time.Time
}
