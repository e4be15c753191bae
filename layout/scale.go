// SPDX-License-Identifier: MIT

package layout

// Scale maps pos into canvas: each axis is min/max normalised into
// [Padding, Size−Padding]. An axis with zero extent (one vertex, or all
// vertices aligned) is centred. The input is not modified.
func Scale[K comparable](pos Positions[K], canvas Canvas) (Positions[K], error) {
	if err := canvas.validate(); err != nil {
		return nil, err
	}
	out := make(Positions[K], len(pos))
	if len(pos) == 0 {
		return out, nil
	}

	first := true
	var minX, maxX, minY, maxY float64
	for _, p := range pos {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	for v, p := range pos {
		out[v] = Point{
			X: scaleAxis(p.X, minX, maxX, canvas.Width, canvas.Padding),
			Y: scaleAxis(p.Y, minY, maxY, canvas.Height, canvas.Padding),
		}
	}
	return out, nil
}

func scaleAxis(v, lo, hi, size, pad float64) float64 {
	if hi == lo {
		return size / 2
	}
	return pad + (v-lo)/(hi-lo)*(size-2*pad)
}
