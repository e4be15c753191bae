// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_path.go - Path(n): the simple path P_n, edges (i-1)–i for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
