package service

import (
	"context"

	"github.com/ascent-prep/ascent/internal/contract"
)

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}
