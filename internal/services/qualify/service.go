// Package qualify evaluates a collected gaming dataset against the fixed
// qualification criteria.
package qualify

import (
	"github.com/questgate/steamqual/internal/model"
)

// Qualification thresholds. These are a fixed contract, including the
// directions: the concentration bound is inclusive at exactly 50%.
const (
	MinTotalHours           = 100.0
	MinAchievements         = 10
	MinGamesOverOneHour     = 3
	MaxMostPlayedPercentage = 50.0
)

// A game counts toward diversity only with strictly more than one hour
const oneHourMinutes = 60

// Service evaluates datasets. Stateless; Evaluate is a pure function.
type Service struct{}

// New creates a new qualify Service
func New() *Service {
	return &Service{}
}

// Evaluate computes the four aggregate metrics and compares each against its
// threshold. A well-formed dataset always yields a verdict; partial results
// are always populated so callers can report which criteria failed and by
// how much.
func (s *Service) Evaluate(dataset *model.GamingDataset) *model.QualificationVerdict {
	totalMinutes := dataset.TotalMinutes()
	gamesOverOneHour := 0
	mostPlayedMinutes := 0
	mostPlayedGame := ""

	for _, g := range dataset.Games {
		if g.PlaytimeMinutes > oneHourMinutes {
			gamesOverOneHour++
		}
		if g.PlaytimeMinutes > mostPlayedMinutes {
			mostPlayedMinutes = g.PlaytimeMinutes
			mostPlayedGame = g.Name
		}
	}

	// Sum minutes first, divide once - no per-game rounding
	totalHours := float64(totalMinutes) / 60.0

	// Zero-usage accounts have no meaningful concentration; report 0 rather
	// than dividing by zero
	mostPlayedPercentage := 0.0
	if totalMinutes > 0 {
		mostPlayedPercentage = float64(mostPlayedMinutes) / float64(totalMinutes) * 100
	}

	// Games with absent achievement data contribute nothing, by omission
	// from the map rather than by a recorded zero
	totalAchievements := 0
	for _, count := range dataset.Achievements {
		totalAchievements += count
	}

	verdict := &model.QualificationVerdict{
		TotalHours:           totalHours,
		TotalAchievements:    totalAchievements,
		GamesOverOneHour:     gamesOverOneHour,
		MostPlayedPercentage: mostPlayedPercentage,
		MostPlayedGame:       mostPlayedGame,
		HoursOK:              totalHours >= MinTotalHours,
		AchievementsOK:       totalAchievements >= MinAchievements,
		DiversityOK:          gamesOverOneHour >= MinGamesOverOneHour,
		ConcentrationOK:      mostPlayedPercentage <= MaxMostPlayedPercentage,
	}
	verdict.Valid = verdict.HoursOK && verdict.AchievementsOK && verdict.DiversityOK && verdict.ConcentrationOK

	return verdict
}

// Interface for dependency injection
type ServiceInterface interface {
	Evaluate(dataset *model.GamingDataset) *model.QualificationVerdict
}

var _ ServiceInterface = (*Service)(nil)
