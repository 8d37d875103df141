package domain

import "time"

// ContentMix is a phase's four-way split of study time, in whole percent.
// The four fields always sum to 100.
type ContentMix struct {
	LearningPct int `json:"learningPct"`
	PracticePct int `json:"practicePct"`
	TestingPct  int `json:"testingPct"`
	ReviewPct   int `json:"reviewPct"`
}

// Sum returns the total of the four percentages.
func (m ContentMix) Sum() int {
	return m.LearningPct + m.PracticePct + m.TestingPct + m.ReviewPct
}

// Phase is a named, contiguous span of weeks with its own objectives and
// content mix. Week numbers are 1-indexed and inclusive on both ends.
type Phase struct {
	Name        string        `json:"name"`
	Category    PhaseCategory `json:"category"`
	StartWeek   int           `json:"startWeek"`
	EndWeek     int           `json:"endWeek"`
	Focus       string        `json:"focus"`
	Objectives  []string      `json:"objectives"`
	WeeklyHours float64       `json:"weeklyHours"`
	Mix         ContentMix    `json:"contentMix"`
}

// Weeks returns the number of weeks the phase spans.
func (p *Phase) Weeks() int {
	return p.EndWeek - p.StartWeek + 1
}

// Contains reports whether the given 1-indexed week falls inside the phase.
func (p *Phase) Contains(week int) bool {
	return week >= p.StartWeek && week <= p.EndWeek
}

// Activity is a single time-boxed self-study block within a week.
type Activity struct {
	Kind        ActivityKind `json:"kind"`
	Name        string       `json:"name"`
	DurationMin int          `json:"durationMin"`
	Description string       `json:"description"`
}

// TutoringSession is one 60-minute session within a week. SuggestedTopics is
// advisory and holds at most two entries.
type TutoringSession struct {
	Index           int      `json:"index"` // 1-based within the week
	DurationMin     int      `json:"durationMin"`
	Focus           []string `json:"focus"`
	SuggestedTopics []string `json:"suggestedTopics"`
}

// WeeklyPlan is the expansion of one scheduled week.
type WeeklyPlan struct {
	Week             int               `json:"week"`
	PhaseName        string            `json:"phaseName"`
	Focus            []string          `json:"focus"`
	Activities       []Activity        `json:"activities"`
	TutoringSessions []TutoringSession `json:"tutoringSessions"`
	TargetHours      float64           `json:"targetHours"`
	TargetProblems   int               `json:"targetProblems"`
	TotalHours       float64           `json:"totalHours"` // self-study + tutoring
}

// TutoringSummary aggregates tutoring across the whole plan.
type TutoringSummary struct {
	SessionsPerWeek int     `json:"sessionsPerWeek"`
	TotalSessions   int     `json:"totalSessions"`
	HoursPerWeek    float64 `json:"hoursPerWeek"`
	Multiplier      float64 `json:"multiplier"`
}

// StudyPlan is the fully assembled plan record. It is immutable once
// produced; a fresh record is created per generation.
type StudyPlan struct {
	ID             string                `json:"id"`
	CreatedAt      time.Time             `json:"createdAt"`
	CurrentScore   int                   `json:"currentScore"`
	TargetScore    int                   `json:"targetScore"`
	ProjectedScore int                   `json:"projectedScore"`
	Timeline       Timeline              `json:"timeline"`
	ScoreGap       ScoreGap              `json:"scoreGap"`
	PlanType       PlanType              `json:"planType"`
	Intensity      IntensityTier         `json:"intensity"`
	WeeklyHours    float64               `json:"weeklyHours"`
	Phases         []Phase               `json:"phases"`
	Weeks          []WeeklyPlan          `json:"weeks"`
	Feasibility    FeasibilityAssessment `json:"feasibility"`
	Tutoring       TutoringSummary       `json:"tutoring"`
}

// PhaseForWeek returns the phase owning the given week, or nil.
func (sp *StudyPlan) PhaseForWeek(week int) *Phase {
	for i := range sp.Phases {
		if sp.Phases[i].Contains(week) {
			return &sp.Phases[i]
		}
	}
	return nil
}
