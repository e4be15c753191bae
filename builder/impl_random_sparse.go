// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomSparseRange constructors.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: i asc, then j asc with j > i. One rng draw per trial.
//   - Each vertex's adjacency therefore lists lower-index neighbours first,
//     ascending, then higher-index ones ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomSparseRange = "RandomSparseRange"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		return sampleGnp(methodRandomSparse, g, cfg, n, p)
	}
}

// RandomSparseRange returns a Constructor that first draws the vertex count
// uniformly from [minN, maxN] and the edge probability uniformly from
// [minP, maxP), then samples G(n,p) from the same RNG.
//
// Contract:
//   - 1 ≤ minN ≤ maxN (else ErrTooFewVertices).
//   - 0 ≤ minP ≤ maxP ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
func RandomSparseRange(minN, maxN int, minP, maxP float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if minN < minRandomSparseVertices || maxN < minN {
			return fmt.Errorf("%s: n range [%d,%d] invalid (min=%d): %w",
				methodRandomSparseRange, minN, maxN, minRandomSparseVertices, ErrTooFewVertices)
		}
		if minP < probMin || maxP > probMax || maxP < minP {
			return fmt.Errorf("%s: p range [%.6f,%.6f] not within [%.1f,%.1f]: %w",
				methodRandomSparseRange, minP, maxP, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparseRange, ErrNeedRandSource)
		}

		n := minN + cfg.rng.Intn(maxN-minN+1)
		p := minP + cfg.rng.Float64()*(maxP-minP)

		return sampleGnp(methodRandomSparseRange, g, cfg, n, p)
	}
}

// sampleGnp adds n vertices and runs the i<j Bernoulli trials.
// For p ∈ {0,1} no RNG draws are made.
func sampleGnp(method string, g *core.Graph[string], cfg builderConfig, n int, p float64) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		u := cfg.idFn(i)
		for j := i + 1; j < n; j++ {
			if !trial(cfg, p) {
				continue
			}
			if err := addEdge(method, g, u, cfg.idFn(j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// trial reports whether one Bernoulli(p) trial succeeds.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
