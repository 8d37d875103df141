package planner

import (
	"testing"

	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelectPlanType_Boundaries(t *testing.T) {
	tests := []struct {
		weeks int
		want  domain.PlanType
	}{
		{1, domain.PlanCram},
		{4, domain.PlanCram},
		{5, domain.PlanShort},
		{8, domain.PlanShort},
		{9, domain.PlanStandard},
		{16, domain.PlanStandard},
		{17, domain.PlanExtended},
		{32, domain.PlanExtended},
		{33, domain.PlanLongTerm},
		{52, domain.PlanLongTerm},
		{104, domain.PlanLongTerm},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectPlanType(tt.weeks), "weeks=%d", tt.weeks)
	}
}

func TestSelectPlanType_MonotonicStepFunction(t *testing.T) {
	// Order of archetypes by duration; the selector must never step backward.
	rank := map[domain.PlanType]int{
		domain.PlanCram:     0,
		domain.PlanShort:    1,
		domain.PlanStandard: 2,
		domain.PlanExtended: 3,
		domain.PlanLongTerm: 4,
	}

	prev := 0
	for w := 1; w <= 120; w++ {
		r := rank[SelectPlanType(w)]
		assert.GreaterOrEqual(t, r, prev, "weeks=%d", w)
		prev = r
	}
}
