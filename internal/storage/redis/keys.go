package redis

import (
	"fmt"

	"github.com/questgate/steamqual/internal/model"
)

// Key prefix for all qualification checker data
const keyPrefix = "steamqual"

// checkResultKey returns the Redis key for a cached CheckResult
func checkResultKey(steamID model.SteamID) string {
	return fmt.Sprintf("%s:check:%s", keyPrefix, steamID)
}

// sessionKey returns the Redis key for a Session, by token hash
func sessionKey(tokenHash string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, tokenHash)
}
