package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/export"
	"github.com/katalvlaran/pathfinder/layout"
	"github.com/katalvlaran/pathfinder/traversal"
)

func chain(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.EdgeList("A-B,B-C,C-D"))
	require.NoError(t, err)
	return g
}

// nodeLine returns the DOT statement declaring the node labelled id.
func nodeLine(t *testing.T, out, id string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, `label="`+id+`"`) {
			return line
		}
	}
	t.Fatalf("node %s not found in\n%s", id, out)
	return ""
}

func TestDOT_PlainGraph(t *testing.T) {
	t.Parallel()

	out, err := export.DOT[string](chain(t), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "graph"), out)
	assert.Equal(t, 3, strings.Count(out, "--"))
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.Contains(t, nodeLine(t, out, id), export.ColorUnvisited)
	}
	assert.NotContains(t, out, "penwidth")
}

func TestDOT_RunningSnapshot(t *testing.T) {
	t.Parallel()

	g := chain(t)
	e, err := traversal.New[string](g, "A", "D", traversal.BFS)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = e.Advance()
		require.NoError(t, err)
	}

	out, err := export.DOT[string](g, e)
	require.NoError(t, err)
	assert.Contains(t, nodeLine(t, out, "A"), `fillcolor="`+export.ColorExpanded+`"`)
	assert.Contains(t, nodeLine(t, out, "B"), `fillcolor="`+export.ColorCurrent+`"`)
	assert.Contains(t, nodeLine(t, out, "C"), "dashed")
	assert.Contains(t, nodeLine(t, out, "D"), export.ColorUnvisited)
}

func TestDOT_FoundPath(t *testing.T) {
	t.Parallel()

	g := chain(t)
	e, err := traversal.New[string](g, "B", "D", traversal.DFS)
	require.NoError(t, err)
	for !e.State().Terminal() {
		_, err = e.Advance()
		require.NoError(t, err)
	}

	out, err := export.DOT[string](g, e, export.WithLabel[string]("DFS B→D"))
	require.NoError(t, err)
	for _, id := range []string{"B", "C", "D"} {
		assert.Contains(t, nodeLine(t, out, id), `fillcolor="`+export.ColorPath+`"`, id)
	}
	assert.Equal(t, 2, strings.Count(out, `penwidth="3"`), "B–C and C–D")
	assert.Contains(t, out, "DFS B→D")
}

func TestDOT_Positions(t *testing.T) {
	t.Parallel()

	g := chain(t)
	pos := layout.Positions[string]{"A": {X: 50, Y: 300}}
	out, err := export.DOT[string](g, nil, export.WithPositions(pos))
	require.NoError(t, err)
	assert.Contains(t, nodeLine(t, out, "A"), `pos="50.00,300.00!"`)
	assert.NotContains(t, nodeLine(t, out, "B"), "pos=")
}

func TestDOT_NilGraph(t *testing.T) {
	t.Parallel()

	_, err := export.DOT[string](nil, nil)
	assert.ErrorIs(t, err, export.ErrGraphNil)
}

func TestDOT_NilEngineDrawsUnvisited(t *testing.T) {
	t.Parallel()

	g := chain(t)
	want, err := export.DOT[string](g, nil)
	require.NoError(t, err)

	var e *traversal.Engine[string]
	got, err := export.DOT[string](g, e)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var ng *core.Graph[string]
	_, err = export.DOT[string](ng, nil)
	assert.ErrorIs(t, err, export.ErrGraphNil)
}
