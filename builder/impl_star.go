// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_star.go - Star(n): hub cfg.idFn(0) joined to leaves cfg.idFn(1..n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
