// Package saga keeps the per-request log of completed forward steps and
// unwinds it when a later step fails.
package saga

import (
	"context"
	"log/slog"

	"car-rental/internal/pkg/errs"
)

// Compensation semantically undoes one completed step.
type Compensation func(ctx context.Context) error

type entry struct {
	step string
	undo Compensation
}

type Log struct {
	name    string
	logger  *slog.Logger
	entries []entry
}

func New(name string, logger *slog.Logger, attrs ...any) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		name:   name,
		logger: logger.With(append([]any{"saga", name}, attrs...)...),
	}
}

func (l *Log) Name() string { return l.name }

// Done records a completed step. A nil undo marks a step with nothing to
// reverse (reads, the pivot).
func (l *Log) Done(step string, undo Compensation) {
	l.logger.Debug("saga step completed", "step", step)
	if undo == nil {
		return
	}
	l.entries = append(l.entries, entry{step: step, undo: undo})
}

// Steps lists the compensable steps in completion order.
func (l *Log) Steps() []string {
	steps := make([]string, len(l.entries))
	for i, e := range l.entries {
		steps[i] = e.step
	}
	return steps
}

// Compensate runs every recorded compensation in reverse order. A failing
// compensation does not stop the remaining ones; their errors are combined.
// The log is empty afterwards.
func (l *Log) Compensate(ctx context.Context) error {
	var result error
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if err := e.undo(ctx); err != nil {
			l.logger.Error("saga compensation failed", "step", e.step, "error", err.Error())
			result = errs.Combine(result, errs.Wrapf(err, "compensate %s", e.step))
			continue
		}
		l.logger.Info("saga step compensated", "step", e.step)
	}
	l.entries = nil
	return result
}
