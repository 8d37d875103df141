package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPlanRequest_SetsDefaults(t *testing.T) {
	d := time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC)
	req := NewPlanRequest(d, 1100, 1300)

	assert.Equal(t, d, req.TestDate)
	assert.Equal(t, 1100, req.CurrentScore)
	assert.Equal(t, 1300, req.TargetScore)
	assert.Equal(t, 1, req.SessionsPerWeek)
	assert.Nil(t, req.Now)
}

func TestPlanError_FormatsCodeAndMessage(t *testing.T) {
	err := &PlanError{Code: ErrInvalidScore, Message: "current score must be between 400 and 1600"}
	assert.Equal(t, "INVALID_SCORE: current score must be between 400 and 1600", err.Error())
}
