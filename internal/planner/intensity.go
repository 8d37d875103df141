package planner

import (
	"math"

	"github.com/ascent-prep/ascent/internal/domain"
)

// RecommendIntensity picks the cheapest tier able to cover the required
// weekly gain once the tutoring multiplier is applied. Tutoring carries
// part of the load, so a tier qualifies when its boosted rate sustained
// over the effective weeks reaches the gap.
//
// The comparison is done in scaled integers (multiplier as a percentage)
// so a gap sitting exactly on a tier boundary lands at, not above, it.
func RecommendIntensity(cfg *Config, gap domain.ScoreGap, tl domain.Timeline, sessionsPerWeek int) domain.IntensityTier {
	multPct := int(math.Round(cfg.Multiplier(sessionsPerWeek) * 100))
	required := float64(gap.TotalGap * 100)

	for _, tier := range domain.TierOrder {
		covered := cfg.Tier(tier).WeeklyRate * float64(multPct*tl.EffectiveWeeks)
		if required <= covered {
			return tier
		}
	}
	return domain.IntensityVeryIntensive
}
