// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_cycle.go - Cycle(n): path edges 0–1…(n-2)–(n-1), then the closing edge (n-1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}
		return addEdge(methodCycle, g, cfg.idFn(n-1), cfg.idFn(0))
	}
}
