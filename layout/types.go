// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Spring.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrInvalidParameter is returned for non-positive iteration counts or repulsion.
	ErrInvalidParameter = errors.New("layout: invalid parameter")

	// ErrInvalidCanvas is returned when a canvas has no drawable area.
	ErrInvalidCanvas = errors.New("layout: invalid canvas")
)

// Graph is the read-only view Spring needs. *core.Graph[K] satisfies it.
type Graph[K comparable] interface {
	Vertices() []K
	HasEdge(u, v K) bool
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// String renders the point as "x,y", the Graphviz pos format.
func (p Point) String() string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

// Positions maps each vertex to its coordinate.
type Positions[K comparable] map[K]Point

// Canvas is the drawable rectangle that Scale maps a layout into.
type Canvas struct {
	Width   float64
	Height  float64
	Padding float64
}

// DefaultCanvas is 800×600 with a 50 unit margin on every side.
func DefaultCanvas() Canvas {
	return Canvas{Width: 800, Height: 600, Padding: 50}
}

// validate reports whether the canvas leaves a non-negative drawable area.
func (c Canvas) validate() error {
	if c.Padding < 0 || c.Width < 2*c.Padding || c.Height < 2*c.Padding {
		return fmt.Errorf("%w: %gx%g with padding %g", ErrInvalidCanvas, c.Width, c.Height, c.Padding)
	}
	return nil
}

// DefaultHitRadius is the default half-width of the NodeAt tolerance box.
const DefaultHitRadius = 20.0
