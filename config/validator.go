package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/traversal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks ranges and enumerations. All problems are reported at
// once, joined into a single error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []string

	if _, err := traversal.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, fmt.Sprintf("algorithm %q: must be bfs, dfs or dls", c.Algorithm))
	}
	if c.DepthLimit < 0 {
		errs = append(errs, fmt.Sprintf("depth_limit %d: must be ≥ 0", c.DepthLimit))
	}
	if c.IntervalMs < 0 {
		errs = append(errs, fmt.Sprintf("interval_ms %d: must be ≥ 0", c.IntervalMs))
	}

	if c.Layout != LayoutSpring && c.Layout != LayoutCircular {
		errs = append(errs, fmt.Sprintf("layout %q: must be %s or %s", c.Layout, LayoutSpring, LayoutCircular))
	}

	g := c.Graph
	if g.Edges == "" {
		if g.MinNodes < 1 {
			errs = append(errs, fmt.Sprintf("graph.min_nodes %d: must be ≥ 1", g.MinNodes))
		}
		if g.MaxNodes < g.MinNodes {
			errs = append(errs, fmt.Sprintf("graph.max_nodes %d: must be ≥ min_nodes %d", g.MaxNodes, g.MinNodes))
		}
		if g.MinProbability < 0 || g.MaxProbability > 1 || g.MaxProbability < g.MinProbability {
			errs = append(errs, fmt.Sprintf("graph probability range [%g,%g]: must satisfy 0 ≤ min ≤ max ≤ 1",
				g.MinProbability, g.MaxProbability))
		}
	}
	if g.IDs != IDsLetters && g.IDs != IDsDecimal {
		errs = append(errs, fmt.Sprintf("graph.ids %q: must be %s or %s", g.IDs, IDsLetters, IDsDecimal))
	}

	cv := c.Canvas
	if cv.Padding < 0 || cv.Width <= 2*cv.Padding || cv.Height <= 2*cv.Padding {
		errs = append(errs, fmt.Sprintf("canvas %gx%g with padding %g: no drawable area", cv.Width, cv.Height, cv.Padding))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}
