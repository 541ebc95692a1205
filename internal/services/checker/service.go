// Package checker composes collection and evaluation into the single
// check operation the shells call.
package checker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/questgate/steamqual/internal/dependencies/clock"
	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/collector"
	"github.com/questgate/steamqual/internal/services/qualify"
	"github.com/questgate/steamqual/internal/storage"
)

// Config holds checker behavior settings
type Config struct {
	// ResultTTL is how long a stored check result is served instead of
	// re-collecting. Zero disables caching.
	ResultTTL time.Duration
}

// DefaultConfig returns default checker configuration
func DefaultConfig() Config {
	return Config{
		ResultTTL: 10 * time.Minute,
	}
}

// Service runs qualification checks
type Service struct {
	collector collector.ServiceInterface
	qualify   qualify.ServiceInterface
	storage   storage.Storage
	clock     clock.Clock
	config    Config
	logger    *slog.Logger
}

// New creates a new checker Service
func New(col collector.ServiceInterface, q qualify.ServiceInterface, store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		collector: col,
		qualify:   q,
		storage:   store,
		clock:     clk,
		config:    cfg,
		logger:    logger,
	}
}

// Check runs the full collect -> evaluate pipeline for an account.
//
// A result younger than the configured TTL is returned from storage without
// touching Steam; force bypasses that. Storage failures on the cache path
// are logged and ignored - the cache is advisory, the check itself is not.
func (s *Service) Check(ctx context.Context, steamID model.SteamID, force bool) (*model.CheckResult, error) {
	if !force && s.config.ResultTTL > 0 {
		if cached := s.cachedResult(ctx, steamID); cached != nil {
			return cached, nil
		}
	}

	dataset, err := s.collector.Collect(ctx, steamID)
	if err != nil {
		return nil, err
	}

	verdict := s.qualify.Evaluate(dataset)

	result := &model.CheckResult{
		SteamID:   steamID,
		Verdict:   *verdict,
		GameCount: len(dataset.Games),
		CheckedAt: s.clock.Now(),
	}

	if s.config.ResultTTL > 0 {
		if err := s.storage.SaveCheckResult(ctx, result); err != nil {
			s.logger.Warn("failed to cache check result",
				slog.String("steam_id", string(steamID)),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("qualification check complete",
		slog.String("steam_id", string(steamID)),
		slog.Bool("valid", verdict.Valid),
		slog.Int("criteria_met", verdict.CriteriaMet()),
	)

	return result, nil
}

func (s *Service) cachedResult(ctx context.Context, steamID model.SteamID) *model.CheckResult {
	result, err := s.storage.GetCheckResult(ctx, steamID)
	if err != nil {
		if !errors.Is(err, model.ErrCheckNotFound) {
			s.logger.Warn("failed to read cached check result",
				slog.String("steam_id", string(steamID)),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	if s.clock.Now().Sub(result.CheckedAt) > s.config.ResultTTL {
		return nil
	}
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	Check(ctx context.Context, steamID model.SteamID, force bool) (*model.CheckResult, error)
}

var _ ServiceInterface = (*Service)(nil)
