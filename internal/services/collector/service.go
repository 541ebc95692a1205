// Package collector assembles the normalized gaming dataset for an account:
// the owned-games list plus per-game achievement counts fetched from the
// Steam API.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/steam"
)

// Config holds collection behavior settings
type Config struct {
	// MaxConcurrentFetches bounds the parallel achievement lookups, to stay
	// under the Steam API's implicit rate limits
	MaxConcurrentFetches int

	// FetchTimeout caps the wall-clock time of the whole achievement phase.
	// Games still in flight when it expires are recorded as absent, not as
	// a collection failure.
	FetchTimeout time.Duration
}

// DefaultConfig returns default collection configuration
func DefaultConfig() Config {
	return Config{
		MaxConcurrentFetches: 8,
		FetchTimeout:         60 * time.Second,
	}
}

// Service collects per-account gaming data
type Service struct {
	steam  steam.API
	config Config
	logger *slog.Logger
}

// New creates a new collector Service
func New(steamClient steam.API, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxConcurrentFetches <= 0 {
		cfg.MaxConcurrentFetches = DefaultConfig().MaxConcurrentFetches
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	return &Service{
		steam:  steamClient,
		config: cfg,
		logger: logger,
	}
}

// Collect fetches the account's library and achievement counts and returns
// the assembled dataset.
//
// The owned-games fetch is fatal if it fails: an inaccessible library means
// there is nothing trustworthy to evaluate. Achievement fetches are fault
// tolerant per game - any failure records that game with no achievement data
// and collection carries on.
func (s *Service) Collect(ctx context.Context, steamID model.SteamID) (*model.GamingDataset, error) {
	games, err := s.steam.GetOwnedGames(ctx, steamID)
	if err != nil {
		if errors.Is(err, steam.ErrProfilePrivate) {
			return nil, model.ErrProfilePrivate
		}
		return nil, fmt.Errorf("%w: %v", model.ErrSteamUnavailable, err)
	}

	// Steam reports a private library as an empty list; either way there is
	// nothing to evaluate
	if len(games) == 0 {
		return nil, model.ErrProfilePrivate
	}

	// Only played games can have unlocked achievements; skip the rest
	counts := make([]int, len(games))
	fetched := make([]bool, len(games))

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	g := new(errgroup.Group)
	g.SetLimit(s.config.MaxConcurrentFetches)

	for i, game := range games {
		if game.PlaytimeMinutes == 0 {
			continue
		}
		i, game := i, game
		g.Go(func() error {
			count, err := s.steam.GetPlayerAchievements(fetchCtx, steamID, game.AppID)
			if err != nil {
				// Absence, not failure: one ill-behaved game must not block
				// the rest of the check
				s.logger.Debug("achievement fetch failed",
					slog.Int("app_id", int(game.AppID)),
					slog.String("name", game.Name),
					slog.String("error", err.Error()),
				)
				return nil
			}
			// Each goroutine writes its own slot; no locking needed
			counts[i] = count
			fetched[i] = true
			return nil
		})
	}

	// Tasks never return errors; Wait is purely a join barrier
	_ = g.Wait()

	// A cancelled caller is the one failure the achievement phase does
	// surface - the phase timeout expiring is not it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	achievements := make(map[model.AppID]int)
	for i, game := range games {
		if fetched[i] {
			achievements[game.AppID] = counts[i]
		}
	}

	s.logger.Debug("collection complete",
		slog.String("steam_id", string(steamID)),
		slog.Int("games", len(games)),
		slog.Int("with_achievement_data", len(achievements)),
	)

	return &model.GamingDataset{
		SteamID:      steamID,
		Games:        games,
		Achievements: achievements,
	}, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Collect(ctx context.Context, steamID model.SteamID) (*model.GamingDataset, error)
}

var _ ServiceInterface = (*Service)(nil)
