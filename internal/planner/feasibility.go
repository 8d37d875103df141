package planner

import (
	"fmt"
	"math"

	"github.com/ascent-prep/ascent/internal/domain"
)

// FeasibilityInput bundles everything the assessment needs. CurrentScore is
// threaded through so the adjust_target recommendation can propose a real
// achievable score.
type FeasibilityInput struct {
	Timeline        domain.Timeline
	Gap             domain.ScoreGap
	Tier            domain.IntensityTier
	SessionsPerWeek int
	CurrentScore    int
}

// AssessFeasibility projects the achievable improvement under the chosen
// intensity and tutoring frequency. The cap models diminishing returns: a
// long timeline cannot project unbounded gains. When the projection falls
// short, prioritized recommendations are synthesized in a fixed order.
func AssessFeasibility(cfg *Config, in FeasibilityInput) domain.FeasibilityAssessment {
	params := cfg.Tier(in.Tier)
	mult := cfg.Multiplier(in.SessionsPerWeek)

	weeklyRate := params.WeeklyRate * mult
	cap := params.MaxImprovement * mult
	projected := math.Min(float64(in.Timeline.EffectiveWeeks)*weeklyRate, cap)
	gap := float64(in.Gap.TotalGap)

	if projected >= gap {
		confidence := 95
		if gap > 0 {
			buffer := projected - gap
			confidence = int(math.Round(math.Min(95, 60+buffer/gap*35)))
		}
		return domain.FeasibilityAssessment{
			IsFeasible:           true,
			Confidence:           confidence,
			ProjectedImprovement: projected,
		}
	}

	shortfall := gap - projected
	confidence := int(math.Round(math.Max(20, 60-shortfall/10)))

	return domain.FeasibilityAssessment{
		IsFeasible:           false,
		Confidence:           confidence,
		ProjectedImprovement: projected,
		ShortfallPoints:      shortfall,
		Recommendations:      buildRecommendations(cfg, in, projected, shortfall, weeklyRate),
	}
}

// buildRecommendations emits suggestions in priority order:
// increase_intensity, add_tutoring, extend_timeline, adjust_target.
// The first two are conditional; the last two always accompany a shortfall.
func buildRecommendations(cfg *Config, in FeasibilityInput, projected, shortfall, weeklyRate float64) []domain.Recommendation {
	var recs []domain.Recommendation

	gap := float64(in.Gap.TotalGap)
	weeks := float64(in.Timeline.EffectiveWeeks)
	mult := cfg.Multiplier(in.SessionsPerWeek)

	// Higher intensity: first tier above the current one whose projection
	// closes the gap under the same multiplier and cap formula.
	for _, tier := range tiersAbove(in.Tier) {
		p := cfg.Tier(tier)
		tierProjected := math.Min(weeks*p.WeeklyRate*mult, p.MaxImprovement*mult)
		if tierProjected >= gap {
			recs = append(recs, domain.Recommendation{
				Kind:         domain.RecIncreaseIntensity,
				Priority:     domain.PriorityHigh,
				ImpactPoints: tierProjected - projected,
				Message:      fmt.Sprintf("Increase self-study to %s intensity (%s)", tier, p.HoursLabel),
				Detail: &domain.RecommendationDetail{
					SuggestedTier:  tier,
					SuggestedHours: p.HoursLabel,
				},
			})
			break
		}
	}

	// More tutoring: only if one extra session/week alone closes the gap at
	// the current intensity.
	if in.SessionsPerWeek < 4 {
		params := cfg.Tier(in.Tier)
		nextMult := cfg.Multiplier(in.SessionsPerWeek + 1)
		boosted := math.Min(weeks*params.WeeklyRate*nextMult, params.MaxImprovement*nextMult)
		if boosted >= gap {
			recs = append(recs, domain.Recommendation{
				Kind:         domain.RecAddTutoring,
				Priority:     domain.PriorityHigh,
				ImpactPoints: boosted - projected,
				Message:      fmt.Sprintf("Add a tutoring session (%d/week) to close the gap", in.SessionsPerWeek+1),
				Detail: &domain.RecommendationDetail{
					SuggestedPerWeek: in.SessionsPerWeek + 1,
				},
			})
		}
	}

	additionalWeeks := int(math.Ceil(shortfall / weeklyRate))
	recs = append(recs, domain.Recommendation{
		Kind:         domain.RecExtendTimeline,
		Priority:     domain.PriorityMedium,
		ImpactPoints: shortfall,
		Message:      fmt.Sprintf("Extend the timeline by %d weeks to reach the target", additionalWeeks),
		Detail: &domain.RecommendationDetail{
			AdditionalWeeks: additionalWeeks,
		},
	})

	achievable := int(math.Round((projected+float64(in.CurrentScore))/10)) * 10
	recs = append(recs, domain.Recommendation{
		Kind:         domain.RecAdjustTarget,
		Priority:     domain.PriorityLow,
		ImpactPoints: shortfall,
		Message:      fmt.Sprintf("Consider adjusting the target to %d for this timeline", achievable),
		Detail: &domain.RecommendationDetail{
			AchievableScore: achievable,
		},
	})

	return recs
}

// tiersAbove returns the tiers strictly above the given one, ascending.
func tiersAbove(tier domain.IntensityTier) []domain.IntensityTier {
	for i, t := range domain.TierOrder {
		if t == tier {
			return domain.TierOrder[i+1:]
		}
	}
	return nil
}
