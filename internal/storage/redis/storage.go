package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Check result operations

func (s *Storage) SaveCheckResult(ctx context.Context, result *model.CheckResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, checkResultKey(result.SteamID), data, s.cfg.CheckResultTTL).Err()
}

func (s *Storage) GetCheckResult(ctx context.Context, steamID model.SteamID) (*model.CheckResult, error) {
	data, err := s.client.Get(ctx, checkResultKey(steamID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCheckNotFound
		}
		return nil, err
	}

	var result model.CheckResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) DeleteCheckResult(ctx context.Context, steamID model.SteamID) error {
	return s.client.Del(ctx, checkResultKey(steamID)).Err()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Let Redis expire the session alongside its logical expiry
	ttl := s.cfg.SessionTTL
	if remaining := time.Until(session.ExpiresAt); remaining > 0 && remaining < ttl {
		ttl = remaining
	}

	return s.client.Set(ctx, sessionKey(session.TokenHash), data, ttl).Err()
}

func (s *Storage) GetSession(ctx context.Context, tokenHash string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, sessionKey(tokenHash)).Err()
}
