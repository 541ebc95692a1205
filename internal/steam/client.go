// Package steam implements a client for the Steam Web API endpoints the
// qualification check depends on: the owned-games list and per-game user
// stats.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/questgate/steamqual/internal/model"
)

// Errors
var (
	// ErrUnauthorized means the API key was rejected
	ErrUnauthorized = errors.New("steam api key rejected")

	// ErrProfilePrivate means the owned-games list is not visible for this
	// account (private game details, or no games at all - Steam does not
	// distinguish the two)
	ErrProfilePrivate = errors.New("owned games not visible")

	// ErrStatsNotAvailable means per-game stats could not be fetched for
	// this account/game pair (no achievement schema, private stats, or an
	// unknown app)
	ErrStatsNotAvailable = errors.New("game stats not available")
)

// Client talks to the Steam Web API
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Steam API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetOwnedGames fetches the account's full library with playtime.
// Free games that have been played are included, matching what the Steam
// community profile page shows.
func (c *Client) GetOwnedGames(ctx context.Context, steamID model.SteamID) ([]model.OwnedGame, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("steamid", string(steamID))
	params.Set("format", "json")
	params.Set("include_appinfo", "true")
	params.Set("include_played_free_games", "true")

	var envelope ownedGamesEnvelope
	if err := c.doRequest(ctx, "/IPlayerService/GetOwnedGames/v0001/", params, &envelope); err != nil {
		return nil, fmt.Errorf("get owned games for %s: %w", steamID, err)
	}

	// A private profile returns 200 with an empty response object
	if len(envelope.Response.Games) == 0 {
		return nil, fmt.Errorf("get owned games for %s: %w", steamID, ErrProfilePrivate)
	}

	games := make([]model.OwnedGame, 0, len(envelope.Response.Games))
	for _, g := range envelope.Response.Games {
		games = append(games, model.OwnedGame{
			AppID:           model.AppID(g.AppID),
			Name:            g.Name,
			PlaytimeMinutes: g.PlaytimeForever,
		})
	}

	return games, nil
}

// GetPlayerAchievements fetches the per-game stats for one game and returns
// the number of unlocked achievements. Games without an achievement schema
// and accounts with private stats both yield ErrStatsNotAvailable.
func (c *Client) GetPlayerAchievements(ctx context.Context, steamID model.SteamID, appID model.AppID) (int, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("steamid", string(steamID))
	params.Set("appid", strconv.Itoa(int(appID)))

	var envelope userStatsEnvelope
	if err := c.doRequest(ctx, "/ISteamUserStats/GetUserStatsForGame/v0002/", params, &envelope); err != nil {
		return 0, fmt.Errorf("get stats for app %d: %w", appID, err)
	}

	unlocked := 0
	for _, a := range envelope.PlayerStats.Achievements {
		if a.Achieved == 1 {
			unlocked++
		}
	}

	return unlocked, nil
}

// doRequest executes a GET request against the API and decodes the JSON
// response into result
func (c *Client) doRequest(ctx context.Context, path string, params url.Values, result any) error {
	fullURL := c.config.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decode
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		// The stats endpoint reports "no stats for this account/game" with
		// any of these depending on the app
		return ErrStatsNotAvailable
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	return nil
}

// API is the surface the collector depends on; satisfied by Client and by
// test fakes.
//
// GetOwnedGames reports an inaccessible or empty library as
// ErrProfilePrivate, never as an empty slice with a nil error.
type API interface {
	GetOwnedGames(ctx context.Context, steamID model.SteamID) ([]model.OwnedGame, error)
	GetPlayerAchievements(ctx context.Context, steamID model.SteamID, appID model.AppID) (int, error)
}

var _ API = (*Client)(nil)
