package memory

import (
	"context"
	"sync"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	checkResults map[model.SteamID]*model.CheckResult
	sessions     map[string]*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		checkResults: make(map[model.SteamID]*model.CheckResult),
		sessions:     make(map[string]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Check result operations

func (s *Storage) SaveCheckResult(ctx context.Context, result *model.CheckResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkResults[result.SteamID] = result
	return nil
}

func (s *Storage) GetCheckResult(ctx context.Context, steamID model.SteamID) (*model.CheckResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.checkResults[steamID]
	if !ok {
		return nil, model.ErrCheckNotFound
	}
	return result, nil
}

func (s *Storage) DeleteCheckResult(ctx context.Context, steamID model.SteamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.checkResults, steamID)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.TokenHash] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, tokenHash string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}
