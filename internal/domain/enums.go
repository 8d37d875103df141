package domain

// Difficulty buckets a score gap qualitatively. Boundaries are inclusive on
// the upper end and evaluated in ascending order.
type Difficulty string

const (
	DifficultySmall       Difficulty = "small"
	DifficultyModerate    Difficulty = "moderate"
	DifficultySignificant Difficulty = "significant"
	DifficultyLarge       Difficulty = "large"
	DifficultyVeryLarge   Difficulty = "very_large"
)

// IntensityTier is a fixed self-study effort level. Each tier binds a weekly
// point-gain rate, an improvement cap, and a recommended hours/week figure.
type IntensityTier string

const (
	IntensityLight         IntensityTier = "light"
	IntensityModerate      IntensityTier = "moderate"
	IntensityIntensive     IntensityTier = "intensive"
	IntensityVeryIntensive IntensityTier = "very_intensive"
)

// TierOrder lists intensity tiers from cheapest to most demanding.
var TierOrder = []IntensityTier{
	IntensityLight,
	IntensityModerate,
	IntensityIntensive,
	IntensityVeryIntensive,
}

// PlanType is a duration archetype selected from the effective week count.
type PlanType string

const (
	PlanCram     PlanType = "cram"      // 2-4 weeks
	PlanShort    PlanType = "short"     // 5-8 weeks
	PlanStandard PlanType = "standard"  // 9-16 weeks
	PlanExtended PlanType = "extended"  // 17-32 weeks
	PlanLongTerm PlanType = "long_term" // 33+ weeks
)

// PhaseCategory tags a phase with its pedagogical role. It is assigned at
// phase construction so downstream stages never re-derive it from the name.
type PhaseCategory string

const (
	CategoryFoundation    PhaseCategory = "foundation"
	CategorySkillBuilding PhaseCategory = "skill_building"
	CategoryMastery       PhaseCategory = "mastery"
	CategoryApplication   PhaseCategory = "application"
	CategoryAssessment    PhaseCategory = "assessment"
	CategoryFinalReview   PhaseCategory = "final_review"
)

type ActivityKind string

const (
	ActivityDiagnostic ActivityKind = "diagnostic"
	ActivityLesson     ActivityKind = "lesson"
	ActivityPractice   ActivityKind = "practice"
	ActivityReview     ActivityKind = "review"
	ActivityTest       ActivityKind = "test"
	ActivityRest       ActivityKind = "rest"
	ActivityTutoring   ActivityKind = "tutoring"
)

type RecommendationKind string

const (
	RecIncreaseIntensity RecommendationKind = "increase_intensity"
	RecAddTutoring       RecommendationKind = "add_tutoring"
	RecExtendTimeline    RecommendationKind = "extend_timeline"
	RecAdjustTarget      RecommendationKind = "adjust_target"
)

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)
