package planner

import "github.com/ascent-prep/ascent/internal/domain"

// TierParams binds an intensity tier's fixed planning constants.
type TierParams struct {
	WeeklyRate     float64 // points gained per week of self-study
	MaxImprovement float64 // cap on total achievable improvement
	WeeklyHours    float64 // recommended self-study hours per week
	HoursLabel     string  // human-readable hour range for messages
}

// Config holds the read-only lookup tables every pipeline stage consults.
// It is constructed once and never mutated, so a single value is safe to
// share across arbitrarily many concurrent generations.
type Config struct {
	Tiers map[domain.IntensityTier]TierParams

	// TutoringMultipliers maps sessions/week (1-4) to the multiplicative
	// boost applied to both the weekly rate and the improvement cap.
	TutoringMultipliers map[int]float64

	// SessionMin is the fixed tutoring session length in minutes.
	SessionMin int

	// ProblemsPerHour converts weekly self-study hours to a problem target.
	ProblemsPerHour float64

	// MaxAchievableGap is the largest gap considered achievable at all.
	MaxAchievableGap int

	// MaxScore is the scale ceiling for projected scores.
	MaxScore int
}

// DefaultConfig returns the standard planning constants.
func DefaultConfig() *Config {
	return &Config{
		Tiers: map[domain.IntensityTier]TierParams{
			domain.IntensityLight: {
				WeeklyRate:     8,
				MaxImprovement: 150,
				WeeklyHours:    3,
				HoursLabel:     "2-4 hours/week",
			},
			domain.IntensityModerate: {
				WeeklyRate:     15,
				MaxImprovement: 250,
				WeeklyHours:    6.5,
				HoursLabel:     "5-8 hours/week",
			},
			domain.IntensityIntensive: {
				WeeklyRate:     22,
				MaxImprovement: 350,
				WeeklyHours:    10.5,
				HoursLabel:     "9-12 hours/week",
			},
			domain.IntensityVeryIntensive: {
				WeeklyRate:     30,
				MaxImprovement: 450,
				WeeklyHours:    16.5,
				HoursLabel:     "15-18 hours/week",
			},
		},
		TutoringMultipliers: map[int]float64{
			1: 1.20,
			2: 1.30,
			3: 1.35,
			4: 1.40,
		},
		SessionMin:       60,
		ProblemsPerHour:  8,
		MaxAchievableGap: 500,
		MaxScore:         1600,
	}
}

// Multiplier returns the tutoring boost for the given sessions/week,
// clamping out-of-range frequencies to the nearest supported value.
func (c *Config) Multiplier(sessionsPerWeek int) float64 {
	if sessionsPerWeek < 1 {
		sessionsPerWeek = 1
	}
	if sessionsPerWeek > 4 {
		sessionsPerWeek = 4
	}
	return c.TutoringMultipliers[sessionsPerWeek]
}

// Tier returns the parameters for a tier. Unknown tiers resolve to moderate.
func (c *Config) Tier(t domain.IntensityTier) TierParams {
	if p, ok := c.Tiers[t]; ok {
		return p
	}
	return c.Tiers[domain.IntensityModerate]
}
