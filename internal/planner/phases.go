package planner

import (
	"math"

	"github.com/ascent-prep/ascent/internal/domain"
)

// phaseSpec is one template row: everything about a phase except its week
// span and hour target, which are computed per plan.
type phaseSpec struct {
	name       string
	category   domain.PhaseCategory
	focus      string
	objectives []string
	mix        domain.ContentMix
}

// span is an inclusive 1-indexed week range.
type span struct {
	start, end int
}

// GeneratePhases expands a plan type into its phase sequence. Phases are
// always contiguous and cover weeks 1..effectiveWeeks exactly; a phase whose
// clamped span would invert at very small week counts is dropped rather than
// emitted inverted.
func GeneratePhases(planType domain.PlanType, effectiveWeeks int, weeklyHours float64) []domain.Phase {
	var specs []phaseSpec
	var ends []int

	switch planType {
	case domain.PlanCram:
		specs, ends = cramTemplate(effectiveWeeks)
	case domain.PlanShort:
		specs, ends = shortTemplate(effectiveWeeks)
	case domain.PlanExtended:
		specs, ends = extendedTemplate(effectiveWeeks)
	case domain.PlanLongTerm:
		specs, ends = longTermTemplate(effectiveWeeks)
	default:
		// Standard doubles as the fallback; unreachable given SelectPlanType
		// is total, but the generator must never return nil.
		specs, ends = standardTemplate(effectiveWeeks)
	}

	return assemblePhases(specs, buildSpans(ends, effectiveWeeks), weeklyHours)
}

// buildSpans turns raw inclusive end-week boundaries into contiguous,
// non-inverting spans covering 1..weeks. The final boundary is forced to
// weeks. A boundary that would invert its span yields a zero-width marker
// (start > end) so the caller can drop the matching phase.
func buildSpans(rawEnds []int, weeks int) []span {
	spans := make([]span, 0, len(rawEnds))
	start := 1
	for i, end := range rawEnds {
		if i == len(rawEnds)-1 {
			end = weeks
		}
		if end > weeks {
			end = weeks
		}
		spans = append(spans, span{start: start, end: end})
		if end >= start {
			start = end + 1
		}
	}
	return spans
}

// assemblePhases pairs template rows with their spans, dropping rows whose
// span inverted during clamping.
func assemblePhases(specs []phaseSpec, spans []span, weeklyHours float64) []domain.Phase {
	phases := make([]domain.Phase, 0, len(specs))
	for i, sp := range spans {
		if sp.end < sp.start {
			continue
		}
		s := specs[i]
		phases = append(phases, domain.Phase{
			Name:        s.name,
			Category:    s.category,
			StartWeek:   sp.start,
			EndWeek:     sp.end,
			Focus:       s.focus,
			Objectives:  s.objectives,
			WeeklyHours: weeklyHours,
			Mix:         s.mix,
		})
	}
	return phases
}

// fracWeek converts a fractional boundary to a whole week, floored at 1.
func fracWeek(frac float64, weeks int) int {
	w := int(math.Floor(frac * float64(weeks)))
	if w < 1 {
		w = 1
	}
	return w
}

// cramTemplate covers 2-4 effective weeks. At two weeks or fewer the spans
// are fixed single weeks; above that the plan splits at the midpoint.
func cramTemplate(weeks int) ([]phaseSpec, []int) {
	specs := []phaseSpec{
		{
			name:     "Essential Foundations",
			category: domain.CategoryFoundation,
			focus:    "High-yield content review across both sections",
			objectives: []string{
				"Take a timed diagnostic to surface the weakest areas",
				"Re-learn the highest-frequency grammar and punctuation rules",
				"Drill linear equations, systems, and proportion problems",
				"Build a one-page formula and rules reference sheet",
			},
			mix: domain.ContentMix{LearningPct: 45, PracticePct: 35, TestingPct: 10, ReviewPct: 10},
		},
		{
			name:     "Strategy & Simulation",
			category: domain.CategoryApplication,
			focus:    "Full-length practice under real timing",
			objectives: []string{
				"Complete full-length timed sections on alternate days",
				"Lock in a pacing plan for each section",
				"Rehearse process-of-elimination on hard questions",
				"Review every missed question the same day",
			},
			mix: domain.ContentMix{LearningPct: 10, PracticePct: 45, TestingPct: 30, ReviewPct: 15},
		},
	}

	if weeks <= 2 {
		return specs, []int{1, 2}
	}
	mid := int(math.Ceil(float64(weeks) / 2))
	return specs, []int{mid, weeks}
}

// shortTemplate covers 5-8 effective weeks with four phases split at
// 30/60/85 percent of the timeline.
func shortTemplate(weeks int) ([]phaseSpec, []int) {
	specs := []phaseSpec{
		{
			name:     "Foundation Review",
			category: domain.CategoryFoundation,
			focus:    "Close the biggest content gaps first",
			objectives: []string{
				"Take a full diagnostic and score it by question type",
				"Review core algebra: linear equations, inequalities, systems",
				"Refresh grammar fundamentals and sentence structure",
				"Set a realistic weekly study routine",
			},
			mix: domain.ContentMix{LearningPct: 50, PracticePct: 30, TestingPct: 5, ReviewPct: 15},
		},
		{
			name:     "Skill Development",
			category: domain.CategorySkillBuilding,
			focus:    "Targeted drills on weak question types",
			objectives: []string{
				"Drill problem solving and data analysis sets",
				"Practice reading passages with evidence-based questions",
				"Work advanced math topics: quadratics and functions",
				"Track error patterns in a mistake journal",
			},
			mix: domain.ContentMix{LearningPct: 30, PracticePct: 45, TestingPct: 10, ReviewPct: 15},
		},
		{
			name:     "Applied Practice",
			category: domain.CategoryApplication,
			focus:    "Timed section work and test strategy",
			objectives: []string{
				"Complete timed sections with strict pacing",
				"Apply elimination strategies on hard questions",
				"Take one full-length practice test",
				"Analyze the practice test for recurring misses",
			},
			mix: domain.ContentMix{LearningPct: 15, PracticePct: 45, TestingPct: 25, ReviewPct: 15},
		},
		{
			name:     "Final Review",
			category: domain.CategoryFinalReview,
			focus:    "Consolidate and taper before test day",
			objectives: []string{
				"Revisit the mistake journal end to end",
				"Do light mixed practice to stay sharp",
				"Walk through test-day logistics and timing plan",
			},
			mix: domain.ContentMix{LearningPct: 10, PracticePct: 35, TestingPct: 20, ReviewPct: 35},
		},
	}

	return specs, []int{
		fracWeek(0.30, weeks),
		fracWeek(0.60, weeks),
		fracWeek(0.85, weeks),
		weeks,
	}
}

// standardTemplate covers 9-16 effective weeks with five phases: three
// fractional spans, a fixed one-week assessment, and a final review tail.
func standardTemplate(weeks int) ([]phaseSpec, []int) {
	specs := []phaseSpec{
		{
			name:     "Foundation Building",
			category: domain.CategoryFoundation,
			focus:    "Systematic content review from the ground up",
			objectives: []string{
				"Take a full diagnostic and build a weakness map",
				"Master linear equations, systems, and word problems",
				"Learn the complete grammar and punctuation rule set",
				"Establish a daily vocabulary-in-context habit",
				"Set up an error log to carry through the plan",
			},
			mix: domain.ContentMix{LearningPct: 50, PracticePct: 30, TestingPct: 5, ReviewPct: 15},
		},
		{
			name:     "Skill Building",
			category: domain.CategorySkillBuilding,
			focus:    "Deepen command of every tested topic",
			objectives: []string{
				"Work quadratics, exponentials, and function notation",
				"Drill data analysis: ratios, rates, and statistics",
				"Practice paired reading passages and evidence questions",
				"Sharpen rhetoric and expression-of-ideas skills",
				"Review the error log weekly for recurring patterns",
			},
			mix: domain.ContentMix{LearningPct: 35, PracticePct: 40, TestingPct: 10, ReviewPct: 15},
		},
		{
			name:     "Mastery & Practice",
			category: domain.CategoryMastery,
			focus:    "Push accuracy on the hardest material",
			objectives: []string{
				"Attack hard-level problem sets in every topic",
				"Complete timed sections at full length",
				"Refine per-section pacing targets",
				"Reduce careless errors with a checking routine",
			},
			mix: domain.ContentMix{LearningPct: 20, PracticePct: 50, TestingPct: 15, ReviewPct: 15},
		},
		{
			name:     "Assessment",
			category: domain.CategoryAssessment,
			focus:    "Full-length measurement week",
			objectives: []string{
				"Take two full-length practice tests under real conditions",
				"Score and analyze both tests in depth",
				"Decide the final-week priorities from the results",
			},
			mix: domain.ContentMix{LearningPct: 5, PracticePct: 25, TestingPct: 55, ReviewPct: 15},
		},
		{
			name:     "Final Review",
			category: domain.CategoryFinalReview,
			focus:    "Targeted polish and taper",
			objectives: []string{
				"Close the last gaps flagged by the assessment week",
				"Do short daily mixed sets to stay sharp",
				"Finalize the test-day plan and rest",
			},
			mix: domain.ContentMix{LearningPct: 10, PracticePct: 35, TestingPct: 20, ReviewPct: 35},
		},
	}

	assessmentEnd := fracWeek(0.80, weeks) + 1
	return specs, []int{
		fracWeek(0.25, weeks),
		fracWeek(0.55, weeks),
		fracWeek(0.80, weeks),
		assessmentEnd,
		weeks,
	}
}

// extendedTemplate covers 17-32 effective weeks with six phases split at
// 15/35/55/75/90 percent of the timeline.
func extendedTemplate(weeks int) ([]phaseSpec, []int) {
	specs := []phaseSpec{
		{
			name:     "Diagnostic Foundation",
			category: domain.CategoryFoundation,
			focus:    "Thorough baseline and fundamentals",
			objectives: []string{
				"Take a full diagnostic and a second confirming test",
				"Rebuild arithmetic and algebra fundamentals",
				"Relearn grammar rules from first principles",
				"Build sustainable weekly study habits",
			},
			mix: domain.ContentMix{LearningPct: 55, PracticePct: 25, TestingPct: 5, ReviewPct: 15},
		},
		{
			name:     "Concept Development",
			category: domain.CategorySkillBuilding,
			focus:    "Broad topic-by-topic instruction",
			objectives: []string{
				"Work through every math domain in sequence",
				"Study passage types and question archetypes",
				"Build vocabulary through daily reading",
				"Start weekly mixed-topic quizzes",
			},
			mix: domain.ContentMix{LearningPct: 40, PracticePct: 35, TestingPct: 10, ReviewPct: 15},
		},
		{
			name:     "Advanced Mastery",
			category: domain.CategoryMastery,
			focus:    "Hard-level accuracy across all domains",
			objectives: []string{
				"Drill hard-difficulty sets in every weak topic",
				"Master advanced math: trig, circles, complex functions",
				"Practice the hardest reading passage pairings",
				"Cut average time per question without losing accuracy",
			},
			mix: domain.ContentMix{LearningPct: 25, PracticePct: 45, TestingPct: 15, ReviewPct: 15},
		},
		{
			name:     "Applied Strategy",
			category: domain.CategoryApplication,
			focus:    "Test craft under realistic conditions",
			objectives: []string{
				"Run timed sections several times a week",
				"Tune section pacing and skip-and-return tactics",
				"Take a full-length test every other week",
				"Review every test the day after",
			},
			mix: domain.ContentMix{LearningPct: 15, PracticePct: 45, TestingPct: 25, ReviewPct: 15},
		},
		{
			name:     "Assessment Intensive",
			category: domain.CategoryAssessment,
			focus:    "Weekly full-length measurement",
			objectives: []string{
				"Take a full-length test each week under real conditions",
				"Deep-dive analysis of every test",
				"Re-drill only the topics the tests flag",
			},
			mix: domain.ContentMix{LearningPct: 5, PracticePct: 30, TestingPct: 50, ReviewPct: 15},
		},
		{
			name:     "Final Review",
			category: domain.CategoryFinalReview,
			focus:    "Polish, consolidate, taper",
			objectives: []string{
				"Close remaining gaps from the assessment phase",
				"Light daily mixed practice only",
				"Lock in sleep schedule and test-day plan",
			},
			mix: domain.ContentMix{LearningPct: 10, PracticePct: 35, TestingPct: 20, ReviewPct: 35},
		},
	}

	return specs, []int{
		fracWeek(0.15, weeks),
		fracWeek(0.35, weeks),
		fracWeek(0.55, weeks),
		fracWeek(0.75, weeks),
		fracWeek(0.90, weeks),
		weeks,
	}
}

// longTermTemplate covers 33+ effective weeks in four quarters by integer
// division; the final quarter absorbs the remainder.
func longTermTemplate(weeks int) ([]phaseSpec, []int) {
	specs := []phaseSpec{
		{
			name:     "Foundations",
			category: domain.CategoryFoundation,
			focus:    "Unhurried ground-up content building",
			objectives: []string{
				"Take a relaxed diagnostic to set the baseline",
				"Work through fundamentals with no time pressure",
				"Establish reading habits that build comprehension",
				"Create a long-horizon study calendar",
			},
			mix: domain.ContentMix{LearningPct: 55, PracticePct: 25, TestingPct: 5, ReviewPct: 15},
		},
		{
			name:     "Skill Development",
			category: domain.CategorySkillBuilding,
			focus:    "Deliberate practice across all topics",
			objectives: []string{
				"Rotate through every tested domain monthly",
				"Add timed drills once accuracy stabilizes",
				"Take a full-length test each month",
				"Maintain and review the error log",
			},
			mix: domain.ContentMix{LearningPct: 35, PracticePct: 40, TestingPct: 10, ReviewPct: 15},
		},
		{
			name:     "Advanced Application",
			category: domain.CategoryApplication,
			focus:    "Full-difficulty practice with strategy work",
			objectives: []string{
				"Shift to hard-level mixed practice sets",
				"Take full-length tests every two weeks",
				"Refine pacing and guessing strategy",
				"Target the stubborn weak spots individually",
			},
			mix: domain.ContentMix{LearningPct: 20, PracticePct: 45, TestingPct: 20, ReviewPct: 15},
		},
		{
			name:     "Test Mastery",
			category: domain.CategoryFinalReview,
			focus:    "Peak and taper into test day",
			objectives: []string{
				"Weekly full-length tests until the taper",
				"Consolidate all notes into a final review set",
				"Taper volume in the last weeks and rest well",
			},
			mix: domain.ContentMix{LearningPct: 10, PracticePct: 40, TestingPct: 25, ReviewPct: 25},
		},
	}

	quarter := weeks / 4
	return specs, []int{quarter, quarter * 2, quarter * 3, weeks}
}
