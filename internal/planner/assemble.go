package planner

import (
	"math"
	"time"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/google/uuid"
)

// AssembleInput carries every upstream result into final assembly.
type AssembleInput struct {
	Now             time.Time
	CurrentScore    int
	TargetScore     int
	SessionsPerWeek int
	Timeline        domain.Timeline
	Gap             domain.ScoreGap
	PlanType        domain.PlanType
	Intensity       domain.IntensityTier
	Phases          []domain.Phase
	Weeks           []domain.WeeklyPlan
	Feasibility     domain.FeasibilityAssessment
}

// AssemblePlan merges all stage outputs into the final immutable StudyPlan.
// The projected score is rounded to the nearest 10 and capped at the scale
// ceiling; tutoring totals are pure multiplications over scheduled weeks.
func AssemblePlan(cfg *Config, in AssembleInput) *domain.StudyPlan {
	projected := float64(in.CurrentScore) + in.Feasibility.ProjectedImprovement
	projectedScore := int(math.Round(projected/10)) * 10
	if projectedScore > cfg.MaxScore {
		projectedScore = cfg.MaxScore
	}

	return &domain.StudyPlan{
		ID:             uuid.New().String(),
		CreatedAt:      in.Now,
		CurrentScore:   in.CurrentScore,
		TargetScore:    in.TargetScore,
		ProjectedScore: projectedScore,
		Timeline:       in.Timeline,
		ScoreGap:       in.Gap,
		PlanType:       in.PlanType,
		Intensity:      in.Intensity,
		WeeklyHours:    cfg.Tier(in.Intensity).WeeklyHours,
		Phases:         in.Phases,
		Weeks:          in.Weeks,
		Feasibility:    in.Feasibility,
		Tutoring: domain.TutoringSummary{
			SessionsPerWeek: in.SessionsPerWeek,
			TotalSessions:   in.SessionsPerWeek * in.Timeline.EffectiveWeeks,
			HoursPerWeek:    float64(in.SessionsPerWeek) * float64(cfg.SessionMin) / 60,
			Multiplier:      cfg.Multiplier(in.SessionsPerWeek),
		},
	}
}
