package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ascent-prep/ascent/internal/contract"
	"github.com/ascent-prep/ascent/internal/domain"
	"github.com/ascent-prep/ascent/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() PlanService {
	return NewPlanService(nil, nil)
}

func generate(t *testing.T, req contract.PlanRequest) *domain.StudyPlan {
	t.Helper()
	resp, err := newService().Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Plan)
	return resp.Plan
}

func TestGenerate_ReferenceScenario_ExtendedPlan(t *testing.T) {
	// 1080 -> 1350 with 2x tutoring and 19 effective weeks: a 270-point gap
	// (past the 250 significant ceiling), extended archetype, projected
	// 1410, feasible.
	req := testutil.NewTestRequest(
		testutil.WithScores(1080, 1350),
		testutil.WithSessionsPerWeek(2),
		testutil.WithWeeksOut(19),
	)
	plan := generate(t, req)

	assert.Equal(t, 19, plan.Timeline.EffectiveWeeks)
	assert.Equal(t, 270, plan.ScoreGap.TotalGap)
	assert.Equal(t, domain.DifficultyLarge, plan.ScoreGap.Difficulty)
	assert.Equal(t, domain.PlanExtended, plan.PlanType)
	assert.Equal(t, 1410, plan.ProjectedScore)
	assert.True(t, plan.Feasibility.IsFeasible)
}

func TestGenerate_CramScenario_TwoWeeksFourSessions(t *testing.T) {
	req := testutil.NewTestRequest(
		testutil.WithScores(1200, 1260),
		testutil.WithSessionsPerWeek(4),
		testutil.WithWeeksOut(2),
	)
	plan := generate(t, req)

	assert.Equal(t, domain.PlanCram, plan.PlanType)
	require.Len(t, plan.Phases, 2)
	require.Len(t, plan.Weeks, 2)
	for _, w := range plan.Weeks {
		assert.Len(t, w.TutoringSessions, 4)
	}
}

func TestGenerate_SingleEffectiveWeek_NeverZero(t *testing.T) {
	// Test date 10 days out: one whole week, one effective week.
	req := testutil.NewTestRequest(
		testutil.WithTestDate(testutil.FixedNow.AddDate(0, 0, 10)),
		testutil.WithScores(1100, 1150),
	)
	plan := generate(t, req)

	assert.Equal(t, 1, plan.Timeline.EffectiveWeeks)
	assert.NotEmpty(t, plan.Phases)
	assert.Len(t, plan.Weeks, 1)
}

func TestGenerate_Idempotent_WithFixedClock(t *testing.T) {
	req := testutil.NewTestRequest()

	a := generate(t, req)
	b := generate(t, req)

	// Identical input and clock produce identical plans except for the ID.
	b2 := *b
	b2.ID = a.ID
	assert.Equal(t, *a, b2)
}

func TestGenerate_WeeklyInvariants(t *testing.T) {
	req := testutil.NewTestRequest(
		testutil.WithScores(1000, 1300),
		testutil.WithSessionsPerWeek(3),
		testutil.WithWeeksOut(14),
	)
	plan := generate(t, req)

	totalSessions := 0
	for _, w := range plan.Weeks {
		assert.InDelta(t, w.TargetHours+3, w.TotalHours, 0.001, "week %d", w.Week)
		totalSessions += len(w.TutoringSessions)
	}
	assert.Equal(t, plan.Tutoring.TotalSessions, totalSessions)
	assert.Equal(t, plan.Tutoring.SessionsPerWeek*plan.Timeline.EffectiveWeeks, plan.Tutoring.TotalSessions)
}

func TestGenerate_InfeasiblePlanCarriesRecommendations(t *testing.T) {
	// 450 points in 3 effective weeks is far out of reach at any tier.
	req := testutil.NewTestRequest(
		testutil.WithScores(950, 1400),
		testutil.WithWeeksOut(3),
	)
	plan := generate(t, req)

	assert.False(t, plan.Feasibility.IsFeasible)
	assert.NotEmpty(t, plan.Feasibility.Recommendations)
	assert.Greater(t, plan.Feasibility.ShortfallPoints, 0.0)
}

func TestGenerate_RejectsPastTestDate(t *testing.T) {
	req := testutil.NewTestRequest(
		testutil.WithTestDate(testutil.FixedNow.AddDate(0, 0, -1)),
	)

	_, err := newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidTestDate)
}

func TestGenerate_RejectsOutOfRangeScores(t *testing.T) {
	req := testutil.NewTestRequest(testutil.WithScores(350, 1200))
	_, err := newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidScore)

	req = testutil.NewTestRequest(testutil.WithScores(1200, 1650))
	_, err = newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidScore)
}

func TestGenerate_RejectsTargetNotAboveCurrent(t *testing.T) {
	req := testutil.NewTestRequest(testutil.WithScores(1300, 1300))
	_, err := newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidTarget)
}

func TestGenerate_RejectsTutoringOutOfRange(t *testing.T) {
	req := testutil.NewTestRequest(testutil.WithSessionsPerWeek(0))
	_, err := newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidTutoring)

	req = testutil.NewTestRequest(testutil.WithSessionsPerWeek(5))
	_, err = newService().Generate(context.Background(), req)
	requirePlanError(t, err, contract.ErrInvalidTutoring)
}

func TestGenerate_WarnsOnUnachievableGap(t *testing.T) {
	req := testutil.NewTestRequest(
		testutil.WithScores(800, 1400),
		testutil.WithWeeksOut(30),
	)

	resp, err := newService().Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Plan.ScoreGap.IsAchievable)
	assert.NotEmpty(t, resp.Warnings)
}

func TestGenerate_ObserverSeesSuccessAndFailure(t *testing.T) {
	var events []GenerationEvent
	svc := NewPlanService(nil, observerFunc(func(e GenerationEvent) {
		events = append(events, e)
	}))

	_, err := svc.Generate(context.Background(), testutil.NewTestRequest())
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(),
		testutil.NewTestRequest(testutil.WithSessionsPerWeek(9)))
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
	assert.Error(t, events[1].Err)
}

type observerFunc func(GenerationEvent)

func (f observerFunc) ObserveGeneration(_ context.Context, e GenerationEvent) { f(e) }

func requirePlanError(t *testing.T, err error, code contract.PlanErrorCode) {
	t.Helper()
	require.Error(t, err)
	var perr *contract.PlanError
	require.True(t, errors.As(err, &perr), "expected *contract.PlanError, got %T", err)
	assert.Equal(t, code, perr.Code)
}

func TestGenerate_DefaultClockStillWorks(t *testing.T) {
	// Without a pinned Now the service uses the wall clock; a date far in
	// the future must still validate.
	req := contract.NewPlanRequest(time.Now().AddDate(0, 6, 0), 1100, 1250)

	resp, err := newService().Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, resp.Plan)
}
