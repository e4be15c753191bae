package layout_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/layout"
)

func TestCircular(t *testing.T) {
	t.Parallel()

	pos := layout.Circular([]string{"A", "B", "C", "D"})
	require.Len(t, pos, 4)
	assert.InDelta(t, 1, pos["A"].X, 1e-9)
	assert.InDelta(t, 0, pos["A"].Y, 1e-9)
	assert.InDelta(t, 0, pos["B"].X, 1e-9)
	assert.InDelta(t, 1, pos["B"].Y, 1e-9)
	assert.InDelta(t, -1, pos["C"].X, 1e-9)

	assert.Equal(t, layout.Point{}, layout.Circular([]int{7})[7])
	assert.Empty(t, layout.Circular[int](nil))
}

func TestSpring_Deterministic(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)

	a, err := layout.Spring[string](g)
	require.NoError(t, err)
	b, err := layout.Spring[string](g)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := layout.Spring[string](g, layout.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	for v, p := range a {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "NaN at %s", v)
	}
}

func TestSpring_HubSitsAmongLeaves(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Star(6))
	require.NoError(t, err)
	pos, err := layout.Spring[string](g, layout.WithIterations(200))
	require.NoError(t, err)

	dist := func(u, v string) float64 {
		return math.Hypot(pos[u].X-pos[v].X, pos[u].Y-pos[v].Y)
	}
	var hubSum, leafSum float64
	var leafPairs int
	for i := 1; i < 6; i++ {
		hubSum += dist("0", strconv.Itoa(i))
		for j := i + 1; j < 6; j++ {
			leafSum += dist(strconv.Itoa(i), strconv.Itoa(j))
			leafPairs++
		}
	}
	assert.Less(t, hubSum/5, leafSum/float64(leafPairs), "edges pull the hub inward")
}

func TestSpring_Errors(t *testing.T) {
	t.Parallel()

	_, err := layout.Spring[string](nil)
	assert.ErrorIs(t, err, layout.ErrGraphNil)

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	_, err = layout.Spring[string](g, layout.WithIterations(0))
	assert.ErrorIs(t, err, layout.ErrInvalidParameter)
	_, err = layout.Spring[string](g, layout.WithRepulsion(-1))
	assert.ErrorIs(t, err, layout.ErrInvalidParameter)
}

func TestSpring_SmallGraphs(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.EdgeList("A"))
	require.NoError(t, err)
	pos, err := layout.Spring[string](g)
	require.NoError(t, err)
	assert.Equal(t, layout.Positions[string]{"A": {}}, pos)

	g, err = builder.BuildGraph(nil, builder.EdgeList("A-B"))
	require.NoError(t, err)
	pos, err = layout.Spring[string](g, layout.WithRepulsion(2))
	require.NoError(t, err)
	require.Len(t, pos, 2)
	assert.NotEqual(t, pos["A"], pos["B"])
}

func TestScale(t *testing.T) {
	t.Parallel()

	pos := layout.Positions[string]{
		"A": {X: -1, Y: -1},
		"B": {X: 1, Y: 1},
		"C": {X: 0, Y: 0.5},
	}
	out, err := layout.Scale(pos, layout.DefaultCanvas())
	require.NoError(t, err)

	assert.Equal(t, layout.Point{X: 50, Y: 50}, out["A"])
	assert.Equal(t, layout.Point{X: 750, Y: 550}, out["B"])
	assert.InDelta(t, 400, out["C"].X, 1e-9)
	assert.InDelta(t, 425, out["C"].Y, 1e-9)
	assert.Equal(t, layout.Point{X: -1, Y: -1}, pos["A"], "input untouched")
}

func TestScale_DegenerateAxesCentred(t *testing.T) {
	t.Parallel()

	out, err := layout.Scale(layout.Positions[int]{1: {X: 3, Y: 3}}, layout.DefaultCanvas())
	require.NoError(t, err)
	assert.Equal(t, layout.Point{X: 400, Y: 300}, out[1])

	out, err = layout.Scale(layout.Positions[int]{1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}}, layout.DefaultCanvas())
	require.NoError(t, err)
	assert.Equal(t, 300.0, out[1].Y)
	assert.Equal(t, 300.0, out[2].Y)
}

func TestScale_InvalidCanvas(t *testing.T) {
	t.Parallel()

	_, err := layout.Scale(layout.Positions[int]{}, layout.Canvas{Width: 80, Height: 60, Padding: 50})
	assert.ErrorIs(t, err, layout.ErrInvalidCanvas)
	_, err = layout.Scale(layout.Positions[int]{}, layout.Canvas{Width: 80, Height: 60, Padding: -1})
	assert.ErrorIs(t, err, layout.ErrInvalidCanvas)
}

func TestNodeAt(t *testing.T) {
	t.Parallel()

	order := []string{"A", "B", "C"}
	pos := layout.Positions[string]{
		"A": {X: 100, Y: 100},
		"B": {X: 110, Y: 100},
		"C": {X: 300, Y: 300},
	}

	tests := []struct {
		name   string
		x, y   float64
		want   string
		wantOK bool
	}{
		{"exact", 300, 300, "C", true},
		{"edge of box", 320, 280, "C", true},
		{"just outside", 321, 300, "", false},
		{"overlap picks first", 105, 100, "A", true},
		{"only B in range", 125, 100, "B", true},
		{"empty space", 500, 500, "", false},
	}
	for _, tc := range tests {
		got, ok := layout.NodeAt(order, pos, tc.x, tc.y, layout.DefaultHitRadius)
		assert.Equal(t, tc.wantOK, ok, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestSelection(t *testing.T) {
	t.Parallel()

	var s layout.Selection[string]
	_, ok := s.Start()
	assert.False(t, ok)

	s.Pick("A")
	start, _ := s.Start()
	assert.Equal(t, "A", start)
	assert.False(t, s.Complete())

	s.Pick("D")
	end, ok := s.End()
	assert.True(t, ok)
	assert.Equal(t, "D", end)
	assert.True(t, s.Complete())

	s.Pick("C")
	start, _ = s.Start()
	_, ok = s.End()
	assert.Equal(t, "C", start)
	assert.False(t, ok, "third pick starts over")

	s.Reset()
	assert.False(t, s.Complete())
}

func TestPointString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.50,-2.00", layout.Point{X: 1.5, Y: -2}.String())
}
