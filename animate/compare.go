// SPDX-License-Identifier: MIT

package animate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathfinder/traversal"
)

// CompareOptions configures every driver started by Compare.
type CompareOptions struct {
	// DepthLimit is passed to DLS runs only.
	DepthLimit int
	Interval   time.Duration
	Logger     *slog.Logger
	Recorder   Recorder
}

// Compare runs one engine per algorithm over the same graph concurrently and
// returns their summaries in the order of algos. g is only read, so it must
// be safe for concurrent readers (core.Graph is).
//
// The first failure (invalid endpoints, a step error, cancellation) cancels
// the remaining runs and is returned.
func Compare[K comparable](ctx context.Context, g traversal.Graph[K], start, end K, o CompareOptions, algos ...traversal.Algorithm) ([]Summary[K], error) {
	out := make([]Summary[K], len(algos))
	eg, ctx := errgroup.WithContext(ctx)

	for i, algo := range algos {
		i, algo := i, algo
		eg.Go(func() error {
			var opts []traversal.Option
			if algo == traversal.DLS {
				opts = append(opts, traversal.WithDepthLimit(o.DepthLimit))
			}
			e, err := traversal.New(g, start, end, algo, opts...)
			if err != nil {
				return err
			}
			d := &Driver[K]{Stepper: e, Interval: o.Interval, Logger: o.Logger, Recorder: o.Recorder}
			sum, err := d.Run(ctx)
			out[i] = sum
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
