package contract

import (
	"time"

	"github.com/ascent-prep/ascent/internal/domain"
)

// PlanRequest is the validated input to plan generation. TestDate must be in
// the future, scores in [MinScore, MaxScore] with target above current, and
// SessionsPerWeek in [1, 4]; the service rejects anything else before the
// pipeline runs.
type PlanRequest struct {
	TestDate        time.Time
	CurrentScore    int
	TargetScore     int
	SessionsPerWeek int

	// Now overrides the generation clock, for deterministic output in tests.
	Now *time.Time
}

// NewPlanRequest builds a request with the default tutoring frequency.
func NewPlanRequest(testDate time.Time, currentScore, targetScore int) PlanRequest {
	return PlanRequest{
		TestDate:        testDate,
		CurrentScore:    currentScore,
		TargetScore:     targetScore,
		SessionsPerWeek: 1,
	}
}

// Score scale bounds for request validation.
const (
	MinScore = 400
	MaxScore = 1600

	MinSessionsPerWeek = 1
	MaxSessionsPerWeek = 4
)

type PlanResponse struct {
	GeneratedAt time.Time
	Plan        *domain.StudyPlan
	Warnings    []string
}

type PlanErrorCode string

const (
	ErrInvalidTestDate PlanErrorCode = "INVALID_TEST_DATE"
	ErrInvalidScore    PlanErrorCode = "INVALID_SCORE"
	ErrInvalidTarget   PlanErrorCode = "INVALID_TARGET"
	ErrInvalidTutoring PlanErrorCode = "INVALID_TUTORING"
	ErrInternalError   PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
