// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math/rand/v2"

	glayout "gonum.org/v1/gonum/graph/layout"
)

const (
	defaultSeed       = 42
	defaultIterations = 50
	defaultRepulsion  = 1
	defaultRate       = 0.05
	defaultTheta      = 0.2
)

// SpringOption configures Spring.
type SpringOption func(*SpringOptions)

// SpringOptions holds the force simulation tunables.
type SpringOptions struct {
	// Seed feeds the initial random placement.
	Seed int64
	// Iterations is the number of force updates.
	Iterations int
	// Repulsion is the strength of the all-pairs repulsive force.
	Repulsion float64

	err error
}

// DefaultSpringOptions returns seed 42, 50 iterations and repulsion 1.
func DefaultSpringOptions() SpringOptions {
	return SpringOptions{Seed: defaultSeed, Iterations: defaultIterations, Repulsion: defaultRepulsion}
}

// WithSeed sets the initial-placement seed.
func WithSeed(seed int64) SpringOption {
	return func(o *SpringOptions) { o.Seed = seed }
}

// WithIterations sets the number of force updates. n < 1 is invalid.
func WithIterations(n int) SpringOption {
	return func(o *SpringOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations must be ≥ 1 (%d)", ErrInvalidParameter, n)
			return
		}
		o.Iterations = n
	}
}

// WithRepulsion sets the repulsive force strength. r ≤ 0 is invalid.
func WithRepulsion(r float64) SpringOption {
	return func(o *SpringOptions) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: repulsion must be > 0 (%g)", ErrInvalidParameter, r)
			return
		}
		o.Repulsion = r
	}
}

// Spring computes a force-directed layout of g with gonum's Eades
// optimiser: adjacent vertices are pulled together by logarithmic springs
// and every pair repels (Barnes–Hut approximated).
//
// Initial coordinates come from a PCG source seeded with Seed, assigned in
// Vertices() order, so the same graph and seed give the same layout.
// The result is not normalised; pass it to Scale for screen coordinates.
func Spring[K comparable](g Graph[K], opts ...SpringOption) (Positions[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultSpringOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vs := g.Vertices()
	pos := make(Positions[K], len(vs))
	switch len(vs) {
	case 0:
		return pos, nil
	case 1:
		pos[vs[0]] = Point{}
		return pos, nil
	}

	eades := glayout.EadesR2{
		Updates:   o.Iterations,
		Repulsion: o.Repulsion,
		Rate:      defaultRate,
		Theta:     defaultTheta,
		Src:       rand.NewPCG(uint64(o.Seed), uint64(o.Seed)),
	}
	optim := glayout.NewOptimizerR2(newOrdered(g, vs), eades.Update)
	for optim.Update() {
	}

	for i, v := range vs {
		c := optim.Coord2(int64(i))
		pos[v] = Point{X: c.X, Y: c.Y}
	}
	return pos, nil
}
