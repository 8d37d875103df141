package planner

import (
	"testing"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func recommendFor(t *testing.T, gap, weeks, sessions int) domain.IntensityTier {
	t.Helper()
	cfg := DefaultConfig()
	return RecommendIntensity(cfg,
		domain.ScoreGap{TotalGap: gap},
		domain.Timeline{EffectiveWeeks: weeks},
		sessions,
	)
}

func TestRecommendIntensity_LightForSmallRequirement(t *testing.T) {
	// 80 points over 10 weeks = 8/week; discounted by 1.20 => 6.7, within light's 8.
	assert.Equal(t, domain.IntensityLight, recommendFor(t, 80, 10, 1))
}

func TestRecommendIntensity_ModerateAboveLightRate(t *testing.T) {
	// 120 over 10 weeks = 12/week; / 1.20 = 10 > 8, <= 15 => moderate.
	assert.Equal(t, domain.IntensityModerate, recommendFor(t, 120, 10, 1))
}

func TestRecommendIntensity_IntensiveBand(t *testing.T) {
	// 250 over 10 weeks = 25/week; / 1.20 = 20.8 > 15, <= 22 => intensive.
	assert.Equal(t, domain.IntensityIntensive, recommendFor(t, 250, 10, 1))
}

func TestRecommendIntensity_VeryIntensiveAboveAllThresholds(t *testing.T) {
	// 300 over 10 weeks = 30/week; / 1.20 = 25 > 22 => very_intensive.
	assert.Equal(t, domain.IntensityVeryIntensive, recommendFor(t, 300, 10, 1))
}

func TestRecommendIntensity_TutoringDiscountsRequirement(t *testing.T) {
	// 220 over 10 weeks = 22/week. With 1 session (1.20): 18.3 => intensive.
	// With 4 sessions (1.40): 15.7 => still intensive, but 210/10/1.40 = 15 => moderate.
	assert.Equal(t, domain.IntensityIntensive, recommendFor(t, 220, 10, 1))
	assert.Equal(t, domain.IntensityModerate, recommendFor(t, 210, 10, 4))
}

func TestRecommendIntensity_ExactBoundaryLandsOnTier(t *testing.T) {
	// Gaps that equal a tier's boosted capacity exactly stay at that tier.
	// 48 over 5 weeks with 1.20: light covers 8*1.20*5 = 48.
	assert.Equal(t, domain.IntensityLight, recommendFor(t, 48, 5, 1))
	// With 1.35 over 5 weeks light covers 8*1.35*5 = 54 exactly; one more
	// point tips to moderate.
	assert.Equal(t, domain.IntensityLight, recommendFor(t, 54, 5, 3))
	assert.Equal(t, domain.IntensityModerate, recommendFor(t, 55, 5, 3))
}

func TestRecommendIntensity_ZeroGapIsLight(t *testing.T) {
	assert.Equal(t, domain.IntensityLight, recommendFor(t, 0, 12, 2))
}
