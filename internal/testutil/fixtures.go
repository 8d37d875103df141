package testutil

import (
	"time"

	"github.com/ascent-prep/ascent/internal/contract"
)

// FixedNow is the reference clock used by fixtures so generated plans are
// reproducible in tests.
var FixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

type RequestOption func(*contract.PlanRequest)

func WithTestDate(d time.Time) RequestOption {
	return func(r *contract.PlanRequest) {
		r.TestDate = d
	}
}

// WithWeeksOut sets the test date so the plan has exactly the given number
// of effective weeks (one rest week on top of the scheduled ones).
func WithWeeksOut(effectiveWeeks int) RequestOption {
	return func(r *contract.PlanRequest) {
		r.TestDate = FixedNow.AddDate(0, 0, (effectiveWeeks+1)*7)
	}
}

func WithScores(current, target int) RequestOption {
	return func(r *contract.PlanRequest) {
		r.CurrentScore = current
		r.TargetScore = target
	}
}

func WithSessionsPerWeek(n int) RequestOption {
	return func(r *contract.PlanRequest) {
		r.SessionsPerWeek = n
	}
}

// NewTestRequest builds a valid request pinned to FixedNow: twelve effective
// weeks, a 200-point gap, and weekly tutoring unless overridden.
func NewTestRequest(opts ...RequestOption) contract.PlanRequest {
	now := FixedNow
	req := contract.PlanRequest{
		TestDate:        now.AddDate(0, 0, 13*7),
		CurrentScore:    1100,
		TargetScore:     1300,
		SessionsPerWeek: 1,
		Now:             &now,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
