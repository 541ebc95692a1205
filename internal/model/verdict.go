package model

// QualificationVerdict is the outcome of evaluating one account's dataset
// against the fixed qualification criteria. It always carries the raw metric
// values alongside the per-criterion booleans so callers can report "met 3
// of 4" rather than a bare pass/fail.
type QualificationVerdict struct {
	// Raw metrics
	TotalHours           float64
	TotalAchievements    int
	GamesOverOneHour     int
	MostPlayedPercentage float64
	MostPlayedGame       string // display name of the most-played game, if known

	// Per-criterion results
	HoursOK         bool
	AchievementsOK  bool
	DiversityOK     bool
	ConcentrationOK bool

	// Valid is true only when all four criteria pass
	Valid bool
}

// CriteriaMet returns how many of the four criteria passed
func (v *QualificationVerdict) CriteriaMet() int {
	n := 0
	for _, ok := range []bool{v.HoursOK, v.AchievementsOK, v.DiversityOK, v.ConcentrationOK} {
		if ok {
			n++
		}
	}
	return n
}
