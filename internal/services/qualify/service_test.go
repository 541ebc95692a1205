package qualify

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/questgate/steamqual/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func dataset(games []model.OwnedGame, achievements map[model.AppID]int) *model.GamingDataset {
	if achievements == nil {
		achievements = map[model.AppID]int{}
	}
	return &model.GamingDataset{
		SteamID:      "76561197960287930",
		Games:        games,
		Achievements: achievements,
	}
}

func (s *ServiceSuite) TestQualifyingAccount() {
	// Four games, one under an hour; most played is just under half the total
	ds := dataset([]model.OwnedGame{
		{AppID: 1, Name: "Alpha", PlaytimeMinutes: 3000},
		{AppID: 2, Name: "Beta", PlaytimeMinutes: 2000},
		{AppID: 3, Name: "Gamma", PlaytimeMinutes: 1100},
		{AppID: 4, Name: "Delta", PlaytimeMinutes: 50},
	}, map[model.AppID]int{1: 10, 2: 5})

	v := s.service.Evaluate(ds)

	s.InDelta(102.5, v.TotalHours, 1e-9)
	s.Equal(15, v.TotalAchievements)
	s.Equal(3, v.GamesOverOneHour) // Delta at 50 min is excluded
	s.InDelta(3000.0/6150.0*100, v.MostPlayedPercentage, 1e-9)
	s.Equal("Alpha", v.MostPlayedGame)

	s.True(v.HoursOK)
	s.True(v.AchievementsOK)
	s.True(v.DiversityOK)
	s.True(v.ConcentrationOK)
	s.True(v.Valid)
	s.Equal(4, v.CriteriaMet())
}

func (s *ServiceSuite) TestConcentratedAccountFails() {
	// One dominant game: concentration fails even though everything else is
	// comfortably over threshold
	ds := dataset([]model.OwnedGame{
		{AppID: 1, Name: "Alpha", PlaytimeMinutes: 6000},
		{AppID: 2, Name: "Beta", PlaytimeMinutes: 120},
		{AppID: 3, Name: "Gamma", PlaytimeMinutes: 90},
	}, map[model.AppID]int{1: 12})

	v := s.service.Evaluate(ds)

	s.InDelta(103.5, v.TotalHours, 1e-9)
	s.Equal(12, v.TotalAchievements)
	s.Equal(3, v.GamesOverOneHour)
	s.InDelta(6000.0/6210.0*100, v.MostPlayedPercentage, 1e-9)

	s.True(v.HoursOK)
	s.True(v.AchievementsOK)
	s.True(v.DiversityOK)
	s.False(v.ConcentrationOK)
	s.False(v.Valid)
	s.Equal(3, v.CriteriaMet())
}

func (s *ServiceSuite) TestOneHourBoundaryIsStrict() {
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 60}, // exactly one hour: excluded
		{AppID: 2, PlaytimeMinutes: 61}, // just over: included
	}, nil)

	v := s.service.Evaluate(ds)
	s.Equal(1, v.GamesOverOneHour)
}

func (s *ServiceSuite) TestConcentrationBoundaryIsInclusive() {
	// Exactly 50% passes
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 3000},
		{AppID: 2, PlaytimeMinutes: 3000},
	}, nil)

	v := s.service.Evaluate(ds)
	s.InDelta(50.0, v.MostPlayedPercentage, 1e-9)
	s.True(v.ConcentrationOK)
}

func (s *ServiceSuite) TestConcentrationJustOverFails() {
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 3001},
		{AppID: 2, PlaytimeMinutes: 2999},
	}, nil)

	v := s.service.Evaluate(ds)
	s.Greater(v.MostPlayedPercentage, 50.0)
	s.False(v.ConcentrationOK)
}

func (s *ServiceSuite) TestZeroUsageAccount() {
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 0},
		{AppID: 2, PlaytimeMinutes: 0},
	}, nil)

	v := s.service.Evaluate(ds)

	s.Zero(v.TotalHours)
	s.Zero(v.MostPlayedPercentage) // no division by zero
	s.Zero(v.GamesOverOneHour)
	s.False(v.Valid)
}

func (s *ServiceSuite) TestEmptyDataset() {
	v := s.service.Evaluate(dataset(nil, nil))

	s.Zero(v.TotalHours)
	s.Zero(v.MostPlayedPercentage)
	s.False(v.Valid)
	s.Empty(v.MostPlayedGame)
}

func (s *ServiceSuite) TestAbsentAchievementDataContributesNothing() {
	// App 2 has no achievement entry at all; app 3 has an explicit zero.
	// Both add nothing to the total, but only app 2 is "unavailable".
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 600},
		{AppID: 2, PlaytimeMinutes: 600},
		{AppID: 3, PlaytimeMinutes: 600},
	}, map[model.AppID]int{1: 7, 3: 0})

	v := s.service.Evaluate(ds)

	s.Equal(7, v.TotalAchievements)
	// Playtime of the absent game still counts toward the other metrics
	s.InDelta(30.0, v.TotalHours, 1e-9)
	s.Equal(3, v.GamesOverOneHour)
}

func (s *ServiceSuite) TestHoursSummedBeforeDivision() {
	// 90 + 30 minutes: per-game rounding would give 1.5 + 0.5; summing first
	// must give exactly 2.0
	ds := dataset([]model.OwnedGame{
		{AppID: 1, PlaytimeMinutes: 90},
		{AppID: 2, PlaytimeMinutes: 30},
	}, nil)

	v := s.service.Evaluate(ds)
	s.Equal(2.0, v.TotalHours)
}

func (s *ServiceSuite) TestEvaluateIsDeterministic() {
	ds := dataset([]model.OwnedGame{
		{AppID: 1, Name: "Alpha", PlaytimeMinutes: 12345},
		{AppID: 2, Name: "Beta", PlaytimeMinutes: 678},
	}, map[model.AppID]int{1: 3, 2: 4})

	first := s.service.Evaluate(ds)
	second := s.service.Evaluate(ds)
	s.Equal(first, second)
}
