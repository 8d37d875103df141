package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ascent-prep/ascent/internal/contract"
	"github.com/ascent-prep/ascent/internal/planner"
)

type planService struct {
	cfg      *planner.Config
	observer GenerationObserver
}

// NewPlanService wires the generation pipeline over the given planning
// constants. Passing a nil config uses the defaults; a nil observer is
// replaced with a no-op.
func NewPlanService(cfg *planner.Config, observer GenerationObserver) PlanService {
	if cfg == nil {
		cfg = planner.DefaultConfig()
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &planService{cfg: cfg, observer: observer}
}

func (s *planService) Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	started := time.Now()

	resp, err := s.generate(req)

	s.observer.ObserveGeneration(ctx, GenerationEvent{
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"current_score":     req.CurrentScore,
			"target_score":      req.TargetScore,
			"sessions_per_week": req.SessionsPerWeek,
		},
	})

	return resp, err
}

// generate runs the pipeline in strict stage order: timeline and score gap
// first, then intensity, feasibility, plan type, phases, weekly expansion,
// and assembly. Every stage is pure; no stage calls back upstream.
func (s *planService) generate(req contract.PlanRequest) (*contract.PlanResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	if err := validateRequest(req, now); err != nil {
		return nil, err
	}

	timeline := planner.ResolveTimeline(now, req.TestDate)
	gap := planner.ClassifyScoreGap(s.cfg, req.CurrentScore, req.TargetScore)
	tier := planner.RecommendIntensity(s.cfg, gap, timeline, req.SessionsPerWeek)

	feasibility := planner.AssessFeasibility(s.cfg, planner.FeasibilityInput{
		Timeline:        timeline,
		Gap:             gap,
		Tier:            tier,
		SessionsPerWeek: req.SessionsPerWeek,
		CurrentScore:    req.CurrentScore,
	})

	planType := planner.SelectPlanType(timeline.EffectiveWeeks)
	phases := planner.GeneratePhases(planType, timeline.EffectiveWeeks, s.cfg.Tier(tier).WeeklyHours)

	weeks, err := planner.ExpandWeeklyPlans(s.cfg, phases, timeline, req.SessionsPerWeek)
	if err != nil {
		return nil, &contract.PlanError{
			Code:    contract.ErrInternalError,
			Message: fmt.Sprintf("expanding weekly plans: %v", err),
		}
	}

	plan := planner.AssemblePlan(s.cfg, planner.AssembleInput{
		Now:             now,
		CurrentScore:    req.CurrentScore,
		TargetScore:     req.TargetScore,
		SessionsPerWeek: req.SessionsPerWeek,
		Timeline:        timeline,
		Gap:             gap,
		PlanType:        planType,
		Intensity:       tier,
		Phases:          phases,
		Weeks:           weeks,
		Feasibility:     feasibility,
	})

	var warnings []string
	if !gap.IsAchievable {
		warnings = append(warnings, fmt.Sprintf(
			"a %d-point improvement is beyond what any schedule reliably delivers", gap.TotalGap))
	}

	return &contract.PlanResponse{
		GeneratedAt: now,
		Plan:        plan,
		Warnings:    warnings,
	}, nil
}

func validateRequest(req contract.PlanRequest, now time.Time) error {
	if !req.TestDate.After(now) {
		return &contract.PlanError{
			Code:    contract.ErrInvalidTestDate,
			Message: "test date must be in the future",
		}
	}
	if req.CurrentScore < contract.MinScore || req.CurrentScore > contract.MaxScore {
		return &contract.PlanError{
			Code:    contract.ErrInvalidScore,
			Message: fmt.Sprintf("current score must be between %d and %d", contract.MinScore, contract.MaxScore),
		}
	}
	if req.TargetScore < contract.MinScore || req.TargetScore > contract.MaxScore {
		return &contract.PlanError{
			Code:    contract.ErrInvalidScore,
			Message: fmt.Sprintf("target score must be between %d and %d", contract.MinScore, contract.MaxScore),
		}
	}
	if req.TargetScore <= req.CurrentScore {
		return &contract.PlanError{
			Code:    contract.ErrInvalidTarget,
			Message: "target score must be above the current score",
		}
	}
	if req.SessionsPerWeek < contract.MinSessionsPerWeek || req.SessionsPerWeek > contract.MaxSessionsPerWeek {
		return &contract.PlanError{
			Code:    contract.ErrInvalidTutoring,
			Message: fmt.Sprintf("tutoring sessions per week must be between %d and %d", contract.MinSessionsPerWeek, contract.MaxSessionsPerWeek),
		}
	}
	return nil
}
