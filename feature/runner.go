package feature

import (
	"context"
	"time"
)

// Runner executes a module's generation task. It exists so a real inference
// backend can replace the simulated one without changing caller contracts.
type Runner interface {
	Run(ctx context.Context, task func() (any, error)) (any, error)
}

// MockRunner stands in for the AI backend: it waits a fixed delay to mimic
// analysis latency, then runs the local task. A caller navigating away
// cancels the wait through ctx.
type MockRunner struct {
	Delay time.Duration
}

func (r MockRunner) Run(ctx context.Context, task func() (any, error)) (any, error) {
	if r.Delay > 0 {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return task()
}
