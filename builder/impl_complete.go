// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_complete.go - Complete(n): every pair {i,j}, i<j, emitted i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
