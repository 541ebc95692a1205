package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/questgate/steamqual/internal/dependencies/mocks"
	"github.com/questgate/steamqual/internal/services/checker"
	"github.com/questgate/steamqual/internal/steam"
	"github.com/questgate/steamqual/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked time and
// randomness. steamClient is a fake, or a real client pointed at a test
// server.
func NewTestApp(steamClient steam.API) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := Config{
		CheckerConfig: checker.DefaultConfig(),
	}

	app := newWithDependencies(store, mockClock, mockRandom, steamClient, cfg, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
