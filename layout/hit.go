// SPDX-License-Identifier: MIT

package layout

import "math"

// NodeAt returns the first vertex in order whose position lies within
// ±radius of (x, y) on both axes. Vertices missing from pos are skipped.
// Order decides ties between overlapping boxes.
func NodeAt[K comparable](order []K, pos Positions[K], x, y, radius float64) (K, bool) {
	for _, v := range order {
		p, ok := pos[v]
		if !ok {
			continue
		}
		if math.Abs(p.X-x) <= radius && math.Abs(p.Y-y) <= radius {
			return v, true
		}
	}
	var zero K
	return zero, false
}

// Selection is the two-click start/end picker: the first pick sets the
// start, the second sets the end, and a third starts over with a new start.
// The zero value is empty and ready to use.
type Selection[K comparable] struct {
	start, end       K
	hasStart, hasEnd bool
}

// Pick records v as the next endpoint.
func (s *Selection[K]) Pick(v K) {
	switch {
	case !s.hasStart || s.hasEnd:
		s.start, s.hasStart = v, true
		var zero K
		s.end, s.hasEnd = zero, false
	default:
		s.end, s.hasEnd = v, true
	}
}

// Start returns the selected start, if any.
func (s *Selection[K]) Start() (K, bool) { return s.start, s.hasStart }

// End returns the selected end, if any.
func (s *Selection[K]) End() (K, bool) { return s.end, s.hasEnd }

// Complete reports whether both endpoints are chosen.
func (s *Selection[K]) Complete() bool { return s.hasStart && s.hasEnd }

// Reset clears both endpoints.
func (s *Selection[K]) Reset() { *s = Selection[K]{} }
