// Package layout places graph vertices in the plane and maps screen
// coordinates back to vertices.
//
// What
//
//   - Circular: vertices evenly spaced on the unit circle, in the given order.
//   - Spring: seeded force-directed layout on gonum's Eades optimiser.
//     Adjacent vertices attract, all pairs repel.
//   - Scale: min/max normalisation of any layout into a padded canvas
//     (default 800×600 with 50px padding).
//   - NodeAt: hit test with a square tolerance box (default ±20 units).
//   - Selection: the two-click start/end picker used by interactive drivers.
//
// Determinism
//
//	Spring draws its initial coordinates from a PCG source seeded with
//	Options.Seed (default 42) and hands vertices to gonum in Vertices()
//	order. Same graph + same seed yields identical coordinates.
//
// Complexity
//
//   - Circular, Scale: O(V).
//   - Spring: O(V²) setup, then O(I·(V log V + E)) for I iterations.
//   - NodeAt: O(V).
//
// Errors
//
//   - ErrGraphNil          nil graph passed to Spring.
//   - ErrInvalidParameter  non-positive iterations or repulsion.
//   - ErrInvalidCanvas     padding leaves no drawable area.
package layout
