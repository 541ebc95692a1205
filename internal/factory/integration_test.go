package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/auth"
	"github.com/questgate/steamqual/internal/steam"
)

// fakeSteamAPI serves canned library data for integration tests
type fakeSteamAPI struct {
	games        map[model.SteamID][]model.OwnedGame
	achievements map[model.AppID]int
	ownedCalls   int
}

func newFakeSteamAPI() *fakeSteamAPI {
	return &fakeSteamAPI{
		games:        make(map[model.SteamID][]model.OwnedGame),
		achievements: make(map[model.AppID]int),
	}
}

func (f *fakeSteamAPI) GetOwnedGames(ctx context.Context, steamID model.SteamID) ([]model.OwnedGame, error) {
	f.ownedCalls++
	games, ok := f.games[steamID]
	if !ok || len(games) == 0 {
		return nil, steam.ErrProfilePrivate
	}
	return games, nil
}

func (f *fakeSteamAPI) GetPlayerAchievements(ctx context.Context, steamID model.SteamID, appID model.AppID) (int, error) {
	count, ok := f.achievements[appID]
	if !ok {
		return 0, steam.ErrStatsNotAvailable
	}
	return count, nil
}

var _ steam.API = (*fakeSteamAPI)(nil)

type IntegrationSuite struct {
	suite.Suite
	fake *fakeSteamAPI
	app  *TestApp
	ctx  context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.fake = newFakeSteamAPI()
	s.app = NewTestApp(s.fake)
	s.ctx = context.Background()
}

// Test: sign in manually, run a check, verdict is stored and cached
func (s *IntegrationSuite) TestManualLoginAndCheckFlow() {
	steamID := model.SteamID("76561197960287930")
	s.fake.games[steamID] = []model.OwnedGame{
		{AppID: 10, Name: "Alpha", PlaytimeMinutes: 3000},
		{AppID: 20, Name: "Beta", PlaytimeMinutes: 2000},
		{AppID: 30, Name: "Gamma", PlaytimeMinutes: 1100},
	}
	s.fake.achievements[10] = 8
	s.fake.achievements[20] = 4

	// Step 1: Sign in with a raw SteamID
	s.app.MockRandom.QueueString("sessiontoken1")
	session, err := s.app.AuthService.ManualLogin(s.ctx, string(steamID))
	s.Require().NoError(err)
	s.Equal(steamID, session.SteamID)

	// Step 2: The session validates
	validated, err := s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(steamID, validated.SteamID)

	// Step 3: Run the check
	result, err := s.app.CheckerService.Check(s.ctx, validated.SteamID, false)
	s.Require().NoError(err)

	s.InDelta(101.67, result.Verdict.TotalHours, 0.01)
	s.Equal(12, result.Verdict.TotalAchievements)
	s.Equal(3, result.Verdict.GamesOverOneHour)
	s.True(result.Verdict.Valid)
	s.Equal(3, result.GameCount)

	// Step 4: A second check within the TTL is served from storage
	s.app.MockClock.Advance(time.Minute)
	again, err := s.app.CheckerService.Check(s.ctx, steamID, false)
	s.Require().NoError(err)
	s.Equal(result.CheckedAt, again.CheckedAt)
	s.Equal(1, s.fake.ownedCalls)

	// Step 5: A forced refresh goes back to Steam
	_, err = s.app.CheckerService.Check(s.ctx, steamID, true)
	s.Require().NoError(err)
	s.Equal(2, s.fake.ownedCalls)
}

// Test: private profiles fail the check but not the session
func (s *IntegrationSuite) TestPrivateProfileFlow() {
	s.app.MockRandom.QueueString("sessiontoken1")
	session, err := s.app.AuthService.ManualLogin(s.ctx, "76561197960287930")
	s.Require().NoError(err)

	_, err = s.app.CheckerService.Check(s.ctx, session.SteamID, false)
	s.ErrorIs(err, model.ErrProfilePrivate)

	// The session survives a failed check
	_, err = s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
}

// Test: OpenID login and logout round trip
func (s *IntegrationSuite) TestOpenIDLoginFlow() {
	s.app.MockRandom.QueueString("sessiontoken1")

	session, err := s.app.AuthService.CompleteLogin(s.ctx, "https://steamcommunity.com/openid/id/76561197960287930")
	s.Require().NoError(err)
	s.Equal(model.SteamID("76561197960287930"), session.SteamID)

	s.app.AuthService.InvalidateSession(s.ctx, session.Token)

	_, err = s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

// Test: sessions expire with mocked time
func (s *IntegrationSuite) TestSessionExpiry() {
	s.app.MockRandom.QueueString("sessiontoken1")
	session, err := s.app.AuthService.ManualLogin(s.ctx, "76561197960287930")
	s.Require().NoError(err)

	s.app.MockClock.Advance(8 * 24 * time.Hour)

	_, err = s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

// Test: factory validates its configuration
func (s *IntegrationSuite) TestNewRequiresAPIKey() {
	_, err := New(Config{})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{SteamAPIKey: "key", StorageType: "carrier-pigeon"})
	s.Error(err)
}
