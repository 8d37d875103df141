package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// GenerationEvent captures lightweight telemetry for one plan generation.
type GenerationEvent struct {
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// GenerationObserver receives plan-generation events.
type GenerationObserver interface {
	ObserveGeneration(ctx context.Context, event GenerationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveGeneration(context.Context, GenerationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes generation events to the provided writer.
func NewLogObserver(w io.Writer) GenerationObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveGeneration(ctx context.Context, event GenerationEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "plan_generation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "plan_generation", attrs...)
}
