package storage

import (
	"context"

	"github.com/questgate/steamqual/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Check result operations
	SaveCheckResult(ctx context.Context, result *model.CheckResult) error
	GetCheckResult(ctx context.Context, steamID model.SteamID) (*model.CheckResult, error)
	DeleteCheckResult(ctx context.Context, steamID model.SteamID) error

	// Session operations, keyed by token hash (raw tokens are never stored)
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, tokenHash string) (*model.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
}
