// SPDX-License-Identifier: MIT

package animate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathfinder/traversal"
)

// DefaultInterval is the pause between two steps.
const DefaultInterval = 300 * time.Millisecond

var (
	// ErrStepperNil is returned by Run when the driver has no stepper.
	ErrStepperNil = errors.New("animate: stepper is nil")

	// ErrInvalidInterval is returned by Run for a negative Interval.
	ErrInvalidInterval = errors.New("animate: invalid interval")
)

// Stepper is the pull-based engine interface. *traversal.Engine[K] satisfies it.
type Stepper[K comparable] interface {
	Advance() (traversal.StepResult[K], error)
	State() traversal.RunState
	Algorithm() traversal.Algorithm
}

// Recorder receives step and run observations. *metrics.Metrics satisfies it.
// Implementations must be safe for concurrent use when shared across drivers.
type Recorder interface {
	ObserveStep(algorithm string)
	ObserveRun(algorithm, outcome string, elapsed time.Duration)
}

// Summary describes a finished (or interrupted) run.
type Summary[K comparable] struct {
	RunID     string
	Algorithm traversal.Algorithm
	State     traversal.RunState
	Steps     int
	Path      []K
	Elapsed   time.Duration
}

// Driver paces a Stepper. Set the exported fields before calling Run.
type Driver[K comparable] struct {
	Stepper Stepper[K]

	// Interval between steps; 0 runs back-to-back.
	Interval time.Duration
	// OnStep, if set, is called synchronously after every successful Advance.
	OnStep func(traversal.StepResult[K])
	// Logger, if nil, discards.
	Logger *slog.Logger
	// Recorder, if set, is told about each step and the final outcome.
	Recorder Recorder
}

// NewDriver returns a Driver for s with DefaultInterval.
func NewDriver[K comparable](s Stepper[K]) *Driver[K] {
	return &Driver[K]{Stepper: s, Interval: DefaultInterval}
}

// Run steps until the stepper reports Done, Advance fails, or ctx ends.
//
// On cancellation the summary reflects the steps taken so far, State is
// still Running, and the error is ctx.Err(). Run on a stepper that is not
// Running fails with traversal.ErrInvalidState and makes no call to Advance.
func (d *Driver[K]) Run(ctx context.Context) (Summary[K], error) {
	var sum Summary[K]
	if d.Stepper == nil {
		return sum, ErrStepperNil
	}
	if d.Interval < 0 {
		return sum, fmt.Errorf("%w: %s", ErrInvalidInterval, d.Interval)
	}

	sum.RunID = uuid.NewString()
	sum.Algorithm = d.Stepper.Algorithm()
	sum.State = d.Stepper.State()
	algo := sum.Algorithm.String()

	log := d.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = log.With("run_id", sum.RunID, "algorithm", algo)

	if sum.State != traversal.Running {
		return sum, fmt.Errorf("%w: cannot drive a %s engine", traversal.ErrInvalidState, sum.State)
	}

	var lim *rate.Limiter
	if d.Interval > 0 {
		lim = rate.NewLimiter(rate.Every(d.Interval), 1)
	}

	log.Info("run started", "interval", d.Interval)
	began := time.Now()
	finish := func(outcome string) {
		sum.Elapsed = time.Since(began)
		if d.Recorder != nil {
			d.Recorder.ObserveRun(algo, outcome, sum.Elapsed)
		}
	}

	for {
		if err := wait(ctx, lim); err != nil {
			finish("cancelled")
			log.Info("run cancelled", "steps", sum.Steps, "err", err)
			return sum, err
		}

		res, err := d.Stepper.Advance()
		if err != nil {
			sum.State = d.Stepper.State()
			finish("error")
			log.Error("step failed", "steps", sum.Steps, "err", err)
			return sum, err
		}
		sum.Steps++
		if d.Recorder != nil {
			d.Recorder.ObserveStep(algo)
		}
		log.Debug("step", "current", res.Current, "ops", len(res.Ops), "done", res.Done)
		if d.OnStep != nil {
			d.OnStep(res)
		}

		if res.Done {
			sum.State = d.Stepper.State()
			sum.Path = res.Path
			finish(sum.State.String())
			log.Info("run finished", "state", sum.State, "steps", sum.Steps, "path", fmt.Sprint(sum.Path), "elapsed", sum.Elapsed)
			return sum, nil
		}
	}
}

// wait blocks until the next step is due. A nil limiter only checks ctx.
func wait(ctx context.Context, lim *rate.Limiter) error {
	if lim == nil {
		return ctx.Err()
	}
	if err := lim.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// the deadline falls before the next tick
		return context.DeadlineExceeded
	}
	return nil
}
