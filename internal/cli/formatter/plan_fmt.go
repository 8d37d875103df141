package formatter

import (
	"fmt"
	"strings"

	"github.com/ascent-prep/ascent/internal/domain"
)

const confidenceBarWidth = 10

// FormatPlan formats the plan summary: verdict, score line, phase timeline,
// tutoring totals, and any recommendations.
func FormatPlan(plan *domain.StudyPlan) string {
	var b strings.Builder

	b.WriteString(FeasibilityIndicator(plan.Feasibility.IsFeasible))
	b.WriteString("  ")
	b.WriteString(RenderConfidence(plan.Feasibility.Confidence, confidenceBarWidth))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %d -> %d  (projected %s)\n",
		Bold("Score:"),
		plan.CurrentScore,
		plan.TargetScore,
		Bold(fmt.Sprintf("%d", plan.ProjectedScore)),
	))
	b.WriteString(fmt.Sprintf("%s %d points, %s\n",
		Bold("Gap:"),
		plan.ScoreGap.TotalGap,
		DifficultyPill(plan.ScoreGap.Difficulty),
	))
	b.WriteString(fmt.Sprintf("%s %s plan, %d study weeks until %s\n",
		Bold("Plan:"),
		string(plan.PlanType),
		plan.Timeline.EffectiveWeeks,
		PlanDate(plan.Timeline.TestDate),
	))
	b.WriteString(fmt.Sprintf("%s %s self-study at %s intensity, plus %d tutoring session(s)/week\n",
		Bold("Load:"),
		Hours(plan.WeeklyHours),
		string(plan.Intensity),
		plan.Tutoring.SessionsPerWeek,
	))
	b.WriteString("\n")

	b.WriteString(formatPhaseTable(plan.Phases))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Tutoring: %d sessions total (%s/week), %.2fx boost",
		plan.Tutoring.TotalSessions,
		Hours(plan.Tutoring.HoursPerWeek),
		plan.Tutoring.Multiplier,
	)))
	b.WriteString("\n")

	if len(plan.Feasibility.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, rec := range plan.Feasibility.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s\n", PriorityTag(rec.Priority), rec.Message))
		}
	}

	return RenderBox("Study Plan", b.String())
}

func formatPhaseTable(phases []domain.Phase) string {
	headers := []string{"PHASE", "WEEKS", "FOCUS", "MIX L/P/T/R"}
	rows := make([][]string, 0, len(phases))

	for _, p := range phases {
		weeks := fmt.Sprintf("%d-%d", p.StartWeek, p.EndWeek)
		if p.StartWeek == p.EndWeek {
			weeks = fmt.Sprintf("%d", p.StartWeek)
		}
		rows = append(rows, []string{
			Bold(p.Name),
			weeks,
			p.Focus,
			fmt.Sprintf("%d/%d/%d/%d",
				p.Mix.LearningPct, p.Mix.PracticePct, p.Mix.TestingPct, p.Mix.ReviewPct),
		})
	}

	return RenderTable(headers, rows)
}

// FormatWeeks formats the full week-by-week breakdown as a card per week.
func FormatWeeks(plan *domain.StudyPlan) string {
	var b strings.Builder

	for i, w := range plan.Weeks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatWeekCard(w))
	}

	return b.String()
}

func formatWeekCard(w domain.WeeklyPlan) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Week %d", w.Week)))
	b.WriteString(Dim(fmt.Sprintf("  %s · %s self-study · %d problems",
		w.PhaseName, Hours(w.TargetHours), w.TargetProblems)))
	b.WriteString("\n")

	for _, f := range w.Focus {
		b.WriteString(fmt.Sprintf("  • %s\n", f))
	}

	for _, a := range w.Activities {
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			activityMarker(a.Kind),
			StyleFg.Render(a.Name),
			Dim(Minutes(a.DurationMin)),
		))
	}

	for _, s := range w.TutoringSessions {
		a := tutoringActivity(s)
		line := fmt.Sprintf("    %s %s %s",
			activityMarker(a.Kind),
			StyleFg.Render(a.Name),
			Dim(Minutes(a.DurationMin)),
		)
		if a.Description != "" {
			line += Dim(" — " + a.Description)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// tutoringActivity lifts a tutoring session into the activity shape so week
// cards render study and tutoring entries through the same path.
func tutoringActivity(s domain.TutoringSession) domain.Activity {
	return domain.Activity{
		Kind:        domain.ActivityTutoring,
		Name:        fmt.Sprintf("Tutoring session %d", s.Index),
		DurationMin: s.DurationMin,
		Description: strings.Join(s.SuggestedTopics, "; "),
	}
}

func activityMarker(kind domain.ActivityKind) string {
	switch kind {
	case domain.ActivityDiagnostic:
		return StyleYellow.Render("◈")
	case domain.ActivityLesson:
		return StyleBlue.Render("▸")
	case domain.ActivityPractice:
		return StyleGreen.Render("▸")
	case domain.ActivityTest:
		return StyleYellow.Render("◈")
	case domain.ActivityReview:
		return StyleBlue.Render("↻")
	case domain.ActivityRest:
		return StyleGreen.Render("☼")
	case domain.ActivityTutoring:
		return StylePurple.Render("◆")
	default:
		return StyleDim.Render("▸")
	}
}
