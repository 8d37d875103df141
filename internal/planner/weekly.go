package planner

import (
	"fmt"
	"math"

	"github.com/ascent-prep/ascent/internal/domain"
)

// ErrNoOwningPhase signals an internal consistency bug: a scheduled week that
// no generated phase covers. Phase spans are contiguous and total-covering by
// construction, so this is never expected at runtime.
var ErrNoOwningPhase = fmt.Errorf("week has no owning phase")

// ExpandWeeklyPlans derives the per-week breakdown for every scheduled week:
// focus strings, time-boxed activities from the phase's content mix, and the
// week's tutoring sessions.
func ExpandWeeklyPlans(cfg *Config, phases []domain.Phase, tl domain.Timeline, sessionsPerWeek int) ([]domain.WeeklyPlan, error) {
	weeks := make([]domain.WeeklyPlan, 0, tl.EffectiveWeeks)

	for w := 1; w <= tl.EffectiveWeeks; w++ {
		phase := owningPhase(phases, w)
		if phase == nil {
			return nil, fmt.Errorf("expanding week %d: %w", w, ErrNoOwningPhase)
		}

		isFirst := w == 1
		isLast := w == tl.EffectiveWeeks
		hours := phase.WeeklyHours

		weeks = append(weeks, domain.WeeklyPlan{
			Week:             w,
			PhaseName:        phase.Name,
			Focus:            weekFocus(phase, w),
			Activities:       weekActivities(phase, hours, isFirst, isLast),
			TutoringSessions: weekTutoringSessions(cfg, phase.Category, sessionsPerWeek, isFirst, isLast),
			TargetHours:      hours,
			TargetProblems:   int(math.Round(hours * cfg.ProblemsPerHour)),
			TotalHours:       hours + float64(sessionsPerWeek)*float64(cfg.SessionMin)/60,
		})
	}

	return weeks, nil
}

func owningPhase(phases []domain.Phase, week int) *domain.Phase {
	for i := range phases {
		if phases[i].Contains(week) {
			return &phases[i]
		}
	}
	return nil
}

// weekFocus spreads the phase's objectives evenly across its weeks, with a
// "Begin <phase> phase" marker prefixed on the phase's first week. Later
// weeks may get a short or empty slice when objectives run out; that is the
// even-distribution intent, not a gap.
func weekFocus(phase *domain.Phase, week int) []string {
	pos := week - phase.StartWeek
	chunk := int(math.Ceil(float64(len(phase.Objectives)) / float64(phase.Weeks())))

	var focus []string
	if pos == 0 {
		focus = append(focus, fmt.Sprintf("Begin %s phase", phase.Name))
	}

	lo := pos * chunk
	hi := lo + chunk
	if lo > len(phase.Objectives) {
		lo = len(phase.Objectives)
	}
	if hi > len(phase.Objectives) {
		hi = len(phase.Objectives)
	}
	focus = append(focus, phase.Objectives[lo:hi]...)

	return focus
}

// weekActivities time-boxes the phase's content mix over the week's study
// minutes, one activity per non-zero category. Durations are rounded
// independently, so their sum may drift from the weekly total by a minute
// or two.
func weekActivities(phase *domain.Phase, hours float64, isFirst, isLast bool) []domain.Activity {
	totalMin := hours * 60
	minutes := func(pct int) int {
		return int(math.Round(totalMin * float64(pct) / 100))
	}

	var acts []domain.Activity

	if phase.Mix.LearningPct > 0 {
		acts = append(acts, domain.Activity{
			Kind:        domain.ActivityLesson,
			Name:        "Concept Lessons",
			DurationMin: minutes(phase.Mix.LearningPct),
			Description: "Learn or re-learn this week's content topics",
		})
	}
	if phase.Mix.PracticePct > 0 {
		acts = append(acts, domain.Activity{
			Kind:        domain.ActivityPractice,
			Name:        "Targeted Practice",
			DurationMin: minutes(phase.Mix.PracticePct),
			Description: "Problem sets focused on this week's objectives",
		})
	}
	if phase.Mix.TestingPct > 0 {
		acts = append(acts, testingActivity(minutes(phase.Mix.TestingPct), isFirst, isLast))
	}
	if phase.Mix.ReviewPct > 0 {
		acts = append(acts, domain.Activity{
			Kind:        domain.ActivityReview,
			Name:        "Review & Error Analysis",
			DurationMin: minutes(phase.Mix.ReviewPct),
			Description: "Go back over missed questions and log error patterns",
		})
	}

	return acts
}

// testingActivity is context-sensitive: a diagnostic on the plan's first
// week, a rest-typed final preparation on the last, a practice test
// otherwise.
func testingActivity(durationMin int, isFirst, isLast bool) domain.Activity {
	switch {
	case isFirst:
		return domain.Activity{
			Kind:        domain.ActivityDiagnostic,
			Name:        "Diagnostic Test",
			DurationMin: durationMin,
			Description: "Baseline full-length test to map strengths and weaknesses",
		}
	case isLast:
		return domain.Activity{
			Kind:        domain.ActivityRest,
			Name:        "Final Preparation",
			DurationMin: durationMin,
			Description: "Light review only; prioritize rest before test day",
		}
	default:
		return domain.Activity{
			Kind:        domain.ActivityTest,
			Name:        "Practice Test",
			DurationMin: durationMin,
			Description: "Timed section or full-length test under real conditions",
		}
	}
}

// weekTutoringSessions builds the week's fixed-length sessions. All sessions
// in a week share one topic set chosen from the week's position or the
// phase's category; topics are dealt two per session in order, and sessions
// past the end of the list get none (topics are advisory).
func weekTutoringSessions(cfg *Config, category domain.PhaseCategory, sessionsPerWeek int, isFirst, isLast bool) []domain.TutoringSession {
	focus, topics := tutoringTopics(category, isFirst, isLast)

	sessions := make([]domain.TutoringSession, 0, sessionsPerWeek)
	for i := 1; i <= sessionsPerWeek; i++ {
		lo := (i - 1) * 2
		hi := lo + 2
		if lo > len(topics) {
			lo = len(topics)
		}
		if hi > len(topics) {
			hi = len(topics)
		}
		sessions = append(sessions, domain.TutoringSession{
			Index:           i,
			DurationMin:     cfg.SessionMin,
			Focus:           focus,
			SuggestedTopics: topics[lo:hi],
		})
	}

	return sessions
}

// tutoringTopics picks the week's shared focus tags and topic pool. Week
// position wins over phase category: the last scheduled week always gets the
// taper set and the first always gets the kickoff set.
func tutoringTopics(category domain.PhaseCategory, isFirst, isLast bool) ([]string, []string) {
	switch {
	case isLast:
		return []string{"test readiness", "confidence"}, []string{
			"Test-day strategy walkthrough",
			"Pacing plan rehearsal",
			"Reviewing the personal error log",
			"Handling test anxiety",
			"Final weak-spot triage",
			"Guessing strategy on hard questions",
		}
	case isFirst:
		return []string{"baseline", "goal setting"}, []string{
			"Diagnostic results review",
			"Setting section score targets",
			"Building the weekly study routine",
			"Identifying priority content areas",
			"How to use the error log",
			"Study resource orientation",
		}
	}

	switch category {
	case domain.CategoryFoundation, domain.CategoryAssessment:
		return []string{"fundamentals", "diagnostics"}, []string{
			"Core algebra problem walkthrough",
			"Grammar rule drills",
			"Reading passage mapping",
			"Arithmetic fluency checks",
			"Diagnostic question review",
			"Foundational vocabulary in context",
		}
	case domain.CategorySkillBuilding:
		return []string{"skill building", "technique"}, []string{
			"Advanced algebra techniques",
			"Evidence-based reading questions",
			"Data analysis and statistics",
			"Rhetorical skills practice",
			"Function and graph problems",
			"Transition and punctuation questions",
		}
	case domain.CategoryMastery:
		return []string{"mastery", "hard questions"}, []string{
			"Hardest-level math walkthroughs",
			"Complex passage analysis",
			"Multi-step word problems",
			"Trap-answer recognition",
			"Advanced grammar edge cases",
			"Speed vs accuracy tradeoffs",
		}
	case domain.CategoryApplication:
		return []string{"strategy", "timing"}, []string{
			"Section pacing strategy",
			"Skip-and-return tactics",
			"Process of elimination drills",
			"Practice test debrief",
			"Stamina and focus management",
			"Question triage by difficulty",
		}
	default:
		return []string{"review", "consolidation"}, []string{
			"Mixed-topic review session",
			"Error log deep dive",
			"Remaining weak areas",
			"Light timed drills",
			"Consolidating notes",
			"Confidence building",
		}
	}
}
