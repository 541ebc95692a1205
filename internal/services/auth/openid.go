package auth

import (
	"regexp"

	"github.com/questgate/steamqual/internal/model"
)

// Steam identity URLs look like https://steamcommunity.com/openid/id/7656...
// The http scheme appears in responses from older clients; accept both.
var claimedIDPattern = regexp.MustCompile(`^https?://steamcommunity\.com/openid/id/(\d{17})$`)

// ExtractSteamID pulls the SteamID out of an OpenID claimed_id URL
func ExtractSteamID(claimedID string) (model.SteamID, error) {
	match := claimedIDPattern.FindStringSubmatch(claimedID)
	if match == nil {
		return "", ErrInvalidClaimedID
	}
	return model.ParseSteamID(match[1])
}
