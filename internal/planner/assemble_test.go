package planner

import (
	"testing"
	"time"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePlan_ProjectedScoreRoundedToTen(t *testing.T) {
	cfg := DefaultConfig()

	plan := AssemblePlan(cfg, AssembleInput{
		Now:             time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CurrentScore:    1080,
		TargetScore:     1350,
		SessionsPerWeek: 2,
		Timeline:        domain.Timeline{EffectiveWeeks: 19},
		Intensity:       domain.IntensityModerate,
		Feasibility:     domain.FeasibilityAssessment{IsFeasible: true, ProjectedImprovement: 325},
	})

	// 1080 + 325 = 1405, rounded to the nearest 10 => 1410.
	assert.Equal(t, 1410, plan.ProjectedScore)
}

func TestAssemblePlan_ProjectedScoreCappedAtScaleCeiling(t *testing.T) {
	cfg := DefaultConfig()

	plan := AssemblePlan(cfg, AssembleInput{
		CurrentScore:    1500,
		TargetScore:     1600,
		SessionsPerWeek: 1,
		Timeline:        domain.Timeline{EffectiveWeeks: 20},
		Intensity:       domain.IntensityModerate,
		Feasibility:     domain.FeasibilityAssessment{IsFeasible: true, ProjectedImprovement: 300},
	})

	assert.Equal(t, 1600, plan.ProjectedScore)
}

func TestAssemblePlan_TutoringTotals(t *testing.T) {
	cfg := DefaultConfig()

	plan := AssemblePlan(cfg, AssembleInput{
		CurrentScore:    1000,
		TargetScore:     1200,
		SessionsPerWeek: 3,
		Timeline:        domain.Timeline{EffectiveWeeks: 10},
		Intensity:       domain.IntensityIntensive,
	})

	assert.Equal(t, 3, plan.Tutoring.SessionsPerWeek)
	assert.Equal(t, 30, plan.Tutoring.TotalSessions)
	assert.InDelta(t, 3.0, plan.Tutoring.HoursPerWeek, 0.001)
	assert.InDelta(t, 1.35, plan.Tutoring.Multiplier, 0.001)
}

func TestAssemblePlan_HeadlineHoursComeFromTier(t *testing.T) {
	cfg := DefaultConfig()

	plan := AssemblePlan(cfg, AssembleInput{
		Intensity: domain.IntensityVeryIntensive,
		Timeline:  domain.Timeline{EffectiveWeeks: 4},
	})
	assert.Equal(t, 16.5, plan.WeeklyHours)
}

func TestAssemblePlan_FreshIDPerAssembly(t *testing.T) {
	cfg := DefaultConfig()
	in := AssembleInput{Timeline: domain.Timeline{EffectiveWeeks: 5}, Intensity: domain.IntensityLight}

	a := AssemblePlan(cfg, in)
	b := AssemblePlan(cfg, in)

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
