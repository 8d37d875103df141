package domain

import "time"

// Timeline is the calendar frame of a study plan. The last whole calendar
// week before the test is reserved as a rest buffer, so EffectiveWeeks is
// always one less than TotalWeeks (floored at 1).
type Timeline struct {
	StartDate      time.Time `json:"startDate"`
	TestDate       time.Time `json:"testDate"`
	TotalDays      int       `json:"totalDays"`
	TotalWeeks     int       `json:"totalWeeks"`
	EffectiveWeeks int       `json:"effectiveWeeks"`
}

// ScoreGap is the distance between current and target score, classified.
type ScoreGap struct {
	TotalGap     int        `json:"totalGap"`
	IsAchievable bool       `json:"isAchievable"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Recommendation is a prioritized suggestion produced when a plan is
// infeasible under the chosen intensity and tutoring frequency.
type Recommendation struct {
	Kind         RecommendationKind     `json:"kind"`
	Priority     RecommendationPriority `json:"priority"`
	ImpactPoints float64                `json:"impactPoints"`
	Message      string                 `json:"message"`
	Detail       *RecommendationDetail  `json:"detail,omitempty"`
}

// RecommendationDetail carries the structured payload for a recommendation.
// Only the fields relevant to the recommendation's kind are set.
type RecommendationDetail struct {
	SuggestedTier    IntensityTier `json:"suggestedTier,omitempty"`
	SuggestedHours   string        `json:"suggestedHours,omitempty"`
	SuggestedPerWeek int           `json:"suggestedPerWeek,omitempty"`
	AdditionalWeeks  int           `json:"additionalWeeks,omitempty"`
	AchievableScore  int           `json:"achievableScore,omitempty"`
}

// FeasibilityAssessment is the projection of achievable improvement against
// the score gap. Recommendations is empty iff the plan is feasible.
type FeasibilityAssessment struct {
	IsFeasible           bool             `json:"isFeasible"`
	Confidence           int              `json:"confidence"` // 0-100
	ProjectedImprovement float64          `json:"projectedImprovement"`
	ShortfallPoints      float64          `json:"shortfallPoints,omitempty"`
	Recommendations      []Recommendation `json:"recommendations,omitempty"`
}
