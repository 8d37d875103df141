package planner

import (
	"math"
	"time"

	"github.com/ascent-prep/ascent/internal/domain"
)

// ResolveTimeline derives the calendar frame for a plan. Both dates are
// normalized to midnight so day-count arithmetic is stable regardless of the
// time of day the plan is generated. The last whole calendar week before the
// test is reserved as a rest buffer and excluded from scheduling.
func ResolveTimeline(now, testDate time.Time) domain.Timeline {
	start := midnight(now)
	test := midnight(testDate)

	days := int(math.Ceil(test.Sub(start).Hours() / 24))
	if days < 0 {
		days = 0
	}

	weeks := days / 7
	effective := weeks - 1
	if effective < 1 {
		effective = 1
	}

	return domain.Timeline{
		StartDate:      start,
		TestDate:       test,
		TotalDays:      days,
		TotalWeeks:     weeks,
		EffectiveWeeks: effective,
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
