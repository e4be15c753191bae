// SPDX-License-Identifier: MIT

package layout

import "math"

// Circular places vertices counter-clockwise on the unit circle, starting at
// angle 0, in the order given. A single vertex sits at the origin.
func Circular[K comparable](vertices []K) Positions[K] {
	pos := make(Positions[K], len(vertices))
	n := len(vertices)
	if n == 1 {
		pos[vertices[0]] = Point{}
		return pos
	}
	for i, v := range vertices {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[v] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pos
}
