package planner

import "github.com/ascent-prep/ascent/internal/domain"

// SelectPlanType buckets the effective week count into a duration archetype.
// Total over all week counts: anything above 32 is long_term.
func SelectPlanType(effectiveWeeks int) domain.PlanType {
	switch {
	case effectiveWeeks <= 4:
		return domain.PlanCram
	case effectiveWeeks <= 8:
		return domain.PlanShort
	case effectiveWeeks <= 16:
		return domain.PlanStandard
	case effectiveWeeks <= 32:
		return domain.PlanExtended
	default:
		return domain.PlanLongTerm
	}
}
