package planner

import (
	"testing"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyScoreGap_DifficultyBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		current int
		target  int
		want    domain.Difficulty
	}{
		{"zero gap", 1200, 1200, domain.DifficultySmall},
		{"at small boundary", 1200, 1300, domain.DifficultySmall},
		{"just over small", 1200, 1301, domain.DifficultyModerate},
		{"at moderate boundary", 1200, 1350, domain.DifficultyModerate},
		{"at significant boundary", 1100, 1350, domain.DifficultySignificant},
		{"at large boundary", 1000, 1350, domain.DifficultyLarge},
		{"very large", 1000, 1351, domain.DifficultyVeryLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := ClassifyScoreGap(cfg, tt.current, tt.target)
			assert.Equal(t, tt.want, gap.Difficulty)
		})
	}
}

func TestClassifyScoreGap_NegativeGapClampedToZero(t *testing.T) {
	cfg := DefaultConfig()

	gap := ClassifyScoreGap(cfg, 1400, 1200)
	assert.Equal(t, 0, gap.TotalGap)
	assert.Equal(t, domain.DifficultySmall, gap.Difficulty)
	assert.True(t, gap.IsAchievable)
}

func TestClassifyScoreGap_AchievableCeiling(t *testing.T) {
	cfg := DefaultConfig()

	// 500 points is the last achievable gap; 501 is not.
	assert.True(t, ClassifyScoreGap(cfg, 900, 1400).IsAchievable)
	assert.False(t, ClassifyScoreGap(cfg, 900, 1401).IsAchievable)
}
