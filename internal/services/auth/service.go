// Package auth handles Steam OpenID login and session management.
//
// There are no passwords anywhere in this system: identity is either
// asserted by Steam's OpenID endpoint or entered manually as a bare SteamID
// for accounts that can't complete the redirect flow.
package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"net/url"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/questgate/steamqual/internal/dependencies/clock"
	"github.com/questgate/steamqual/internal/dependencies/random"
	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/storage"
)

// Errors
var (
	ErrInvalidSession   = errors.New("invalid or expired session")
	ErrInvalidClaimedID = errors.New("openid response did not identify a steam account")
)

const (
	openIDEndpoint = "https://steamcommunity.com/openid/login"
	openIDNS       = "http://specs.openid.net/auth/2.0"
	openIDSelect   = "http://specs.openid.net/auth/2.0/identifier_select"

	tokenLength   = 32
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Session represents an authenticated session. Token is the raw value handed
// to the visitor; storage only ever sees its hash.
type Session struct {
	Token     string
	SteamID   model.SteamID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 7 * 24 * time.Hour,
	}
}

// Service handles login and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random

	sessionDuration time.Duration
}

// New creates a new AuthService
func New(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         store,
		clock:           clk,
		random:          rnd,
		sessionDuration: cfg.SessionDuration,
	}
}

// LoginURL builds the Steam OpenID checkid_setup URL the browser is sent to.
// returnTo is where Steam redirects back after login; realm is the site root
// the visitor is asked to trust.
func (s *Service) LoginURL(returnTo, realm string) string {
	params := url.Values{}
	params.Set("openid.ns", openIDNS)
	params.Set("openid.mode", "checkid_setup")
	params.Set("openid.return_to", returnTo)
	params.Set("openid.realm", realm)
	params.Set("openid.identity", openIDSelect)
	params.Set("openid.claimed_id", openIDSelect)

	return openIDEndpoint + "?" + params.Encode()
}

// CompleteLogin extracts the SteamID from an OpenID claimed_id and creates a
// session for it. The claimed_id must be a steamcommunity identity URL
// ending in a 17-digit account ID.
func (s *Service) CompleteLogin(ctx context.Context, claimedID string) (*Session, error) {
	steamID, err := ExtractSteamID(claimedID)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, steamID)
}

// ManualLogin creates a session for a directly-entered SteamID, for visitors
// who can't or won't complete the OpenID redirect
func (s *Service) ManualLogin(ctx context.Context, raw string) (*Session, error) {
	steamID, err := model.ParseSteamID(raw)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, steamID)
}

// ValidateSession checks a raw session token and returns the session it
// belongs to
func (s *Service) ValidateSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	hash := hashToken(token)
	stored, err := s.storage.GetSession(ctx, hash)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(stored.ExpiresAt) {
		_ = s.storage.DeleteSession(ctx, hash)
		return nil, ErrInvalidSession
	}

	return &Session{
		Token:     token,
		SteamID:   stored.SteamID,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(ctx context.Context, token string) {
	if token == "" {
		return
	}
	_ = s.storage.DeleteSession(ctx, hashToken(token))
}

func (s *Service) createSession(ctx context.Context, steamID model.SteamID) (*Session, error) {
	token := s.random.String(tokenLength, tokenAlphabet)
	now := s.clock.Now()
	expires := now.Add(s.sessionDuration)

	stored := &model.Session{
		TokenHash: hashToken(token),
		SteamID:   steamID,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	if err := s.storage.SaveSession(ctx, stored); err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		SteamID:   steamID,
		CreatedAt: now,
		ExpiresAt: expires,
	}, nil
}

// hashToken derives the storage key for a session token. Storing only the
// hash keeps a storage dump from yielding usable session cookies.
func hashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
