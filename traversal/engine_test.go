package traversal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/traversal"
)

// edges builds a string graph from an EdgeList string; list order is adjacency order.
func edges(t testing.TB, list string) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.EdgeList(list))
	require.NoError(t, err)
	return g
}

// drain advances e until Done, failing on any error.
func drain[K comparable](t *testing.T, e *traversal.Engine[K]) traversal.StepResult[K] {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		res, err := e.Advance()
		require.NoError(t, err)
		if res.Done {
			return res
		}
	}
	t.Fatal("engine did not terminate")
	return traversal.StepResult[K]{}
}

// logStrings renders the operation log as "Kind node" strings.
func logStrings[K comparable](ops []traversal.Operation[K]) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	g := edges(t, "A-B")

	tests := []struct {
		name  string
		graph traversal.Graph[string]
		start string
		end   string
		algo  traversal.Algorithm
		opts  []traversal.Option
		want  error
	}{
		{"nil graph", nil, "A", "B", traversal.BFS, nil, traversal.ErrGraphNil},
		{"missing start", g, "Z", "B", traversal.BFS, nil, traversal.ErrInvalidNode},
		{"missing end", g, "A", "Z", traversal.DFS, nil, traversal.ErrInvalidNode},
		{"unknown algorithm", g, "A", "B", traversal.Algorithm(7), nil, traversal.ErrInvalidParameter},
		{"DLS without limit", g, "A", "B", traversal.DLS, nil, traversal.ErrInvalidParameter},
		{"negative limit", g, "A", "B", traversal.DLS, []traversal.Option{traversal.WithDepthLimit(-1)}, traversal.ErrInvalidParameter},
		{"negative limit on BFS", g, "A", "B", traversal.BFS, []traversal.Option{traversal.WithDepthLimit(-3)}, traversal.ErrInvalidParameter},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := traversal.New(tc.graph, tc.start, tc.end, tc.algo, tc.opts...)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C"), "A", "C", traversal.DFS)
	require.NoError(t, err)

	assert.Equal(t, traversal.Running, e.State())
	assert.Equal(t, []string{"A"}, e.Frontier())
	assert.Equal(t, []string{"A"}, e.Visited())
	assert.Empty(t, e.Log())
	assert.Empty(t, e.Expanded())
	assert.Zero(t, e.Steps())
	assert.Equal(t, traversal.ParentMap[string]{"A": {}}, e.Parents())
	assert.Nil(t, e.Path())
}

func TestBFS_Chain(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C,C-D"), "A", "D", traversal.BFS)
	require.NoError(t, err)

	res, err := e.Advance()
	require.NoError(t, err)
	assert.Equal(t, "A", res.Current)
	assert.Equal(t, []string{"Dequeue A", "Enqueue B"}, logStrings(res.Ops))
	assert.False(t, res.Done)

	res = drain(t, e)
	assert.True(t, res.Found)
	assert.Equal(t, "D", res.Current)
	assert.Equal(t, []string{"Dequeue D"}, logStrings(res.Ops))
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)

	assert.Equal(t, []string{
		"Dequeue A", "Enqueue B",
		"Dequeue B", "Enqueue C",
		"Dequeue C", "Enqueue D",
		"Dequeue D",
	}, logStrings(e.Log()))
	assert.Equal(t, traversal.Found, e.State())
	assert.Equal(t, 4, e.Steps())
	assert.Equal(t, []string{"A", "B", "C", "D"}, e.Path())
	assert.Equal(t, []string{"A", "B", "C", "D"}, e.Expanded())
}

func TestDFS_Chain(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C,C-D"), "A", "D", traversal.DFS)
	require.NoError(t, err)

	res := drain(t, e)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, []string{
		"Pop A", "Push B",
		"Pop B", "Push C",
		"Pop C", "Push D",
		"Pop D",
	}, logStrings(e.Log()))
}

func TestDLS_LimitOne(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C,C-D"), "A", "D", traversal.DLS, traversal.WithDepthLimit(1))
	require.NoError(t, err)
	assert.Equal(t, 1, e.DepthLimit())

	res, err := e.Advance()
	require.NoError(t, err)
	require.Len(t, res.Ops, 2)
	assert.Equal(t, traversal.Operation[string]{Kind: traversal.Pop, Node: "A", Depth: 0}, res.Ops[0])
	assert.Equal(t, traversal.Operation[string]{Kind: traversal.Push, Node: "B", Depth: 1}, res.Ops[1])

	res, err = e.Advance()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pop B"}, logStrings(res.Ops), "depth 1 is at the limit; nothing pushed")

	res, err = e.Advance()
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.False(t, res.Found)
	assert.Empty(t, res.Ops)
	assert.Equal(t, traversal.Exhausted, e.State())
	assert.Nil(t, e.Path())
	assert.Equal(t, 3, e.Steps())
}

func TestDLS_LimitZero(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B"), "A", "B", traversal.DLS, traversal.WithDepthLimit(0))
	require.NoError(t, err)

	res := drain(t, e)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"Pop A"}, logStrings(e.Log()))
}

func TestDLS_FirstDiscoveryWins(t *testing.T) {
	t.Parallel()

	// G is 3 hops away via S-B-X-G, but DLS reaches X first at depth 3
	// through S-A-C-X and never re-discovers it from B.
	g := edges(t, "S-B,S-A,A-C,C-X,B-X,X-G")

	dls, err := traversal.New[string](g, "S", "G", traversal.DLS, traversal.WithDepthLimit(3))
	require.NoError(t, err)
	res := drain(t, dls)
	assert.False(t, res.Found)
	assert.Equal(t, []string{
		"Pop S", "Push B", "Push A",
		"Pop A", "Push C",
		"Pop C", "Push X",
		"Pop X",
		"Pop B",
	}, logStrings(dls.Log()))

	bfs, err := traversal.New[string](g, "S", "G", traversal.BFS)
	require.NoError(t, err)
	res = drain(t, bfs)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"S", "B", "X", "G"}, res.Path)

	dfs, err := traversal.New[string](g, "S", "G", traversal.DFS)
	require.NoError(t, err)
	res = drain(t, dfs)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "C", "X", "G"}, res.Path)
}

func TestStartEqualsEnd(t *testing.T) {
	t.Parallel()

	for _, algo := range []traversal.Algorithm{traversal.BFS, traversal.DFS, traversal.DLS} {
		e, err := traversal.New[string](edges(t, "A-B"), "A", "A", algo, traversal.WithDepthLimit(0))
		require.NoError(t, err)

		res, err := e.Advance()
		require.NoError(t, err, algo)
		assert.True(t, res.Found, algo)
		assert.Equal(t, []string{"A"}, res.Path, algo)
		assert.Len(t, res.Ops, 1, algo)
		assert.True(t, res.Ops[0].IsRemoval(), algo)
	}
}

func TestDisconnected_Exhausts(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,C-D"), "A", "D", traversal.BFS)
	require.NoError(t, err)

	res := drain(t, e)
	assert.False(t, res.Found)
	assert.Equal(t, traversal.Exhausted, e.State())
	assert.ElementsMatch(t, []string{"A", "B"}, e.Visited())
	assert.NotContains(t, e.Parents(), "D")
}

func TestAdvance_AfterTerminal(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B"), "A", "B", traversal.BFS)
	require.NoError(t, err)
	drain(t, e)

	logLen, steps := len(e.Log()), e.Steps()
	_, err = e.Advance()
	assert.ErrorIs(t, err, traversal.ErrInvalidState)
	assert.Equal(t, traversal.Found, e.State())
	assert.Len(t, e.Log(), logLen)
	assert.Equal(t, steps, e.Steps())
}

func TestFrontier_Order(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)

	bfs, err := traversal.New[string](g, "0", "3", traversal.BFS)
	require.NoError(t, err)
	_, err = bfs.Advance()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, bfs.Frontier(), "queue front first")

	dfs, err := traversal.New[string](g, "0", "3", traversal.DFS)
	require.NoError(t, err)
	_, err = dfs.Advance()
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, dfs.Frontier(), "stack top first")

	res, err := dfs.Advance()
	require.NoError(t, err)
	assert.True(t, res.Found, "3 is on top of the stack")
	assert.Equal(t, []string{"0", "3"}, res.Path)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C"), "A", "C", traversal.BFS)
	require.NoError(t, err)
	_, err = e.Advance()
	require.NoError(t, err)

	log := e.Log()
	log[0].Node = "Z"
	visited := e.Visited()
	visited[0] = "Z"
	parents := e.Parents()
	delete(parents, "A")
	frontier := e.Frontier()
	frontier[0] = "Z"

	assert.Equal(t, "A", e.Log()[0].Node)
	assert.Equal(t, "A", e.Visited()[0])
	assert.Contains(t, e.Parents(), "A")
	assert.Equal(t, []string{"B"}, e.Frontier())
	assert.True(t, e.IsVisited("B"))
	assert.False(t, e.IsVisited("C"))
}

func TestAdvance_FoundPathIsACopy(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C,C-D"), "A", "D", traversal.BFS)
	require.NoError(t, err)
	last := drain(t, e)
	require.True(t, last.Found)

	last.Path[0] = "ZZ"
	assert.Equal(t, []string{"A", "B", "C", "D"}, e.Path())

	p := e.Path()
	p[1] = "ZZ"
	assert.Equal(t, []string{"A", "B", "C", "D"}, e.Path())
}

func TestBFS_IgnoresDepthLimit(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C,C-D"), "A", "D", traversal.BFS, traversal.WithDepthLimit(1))
	require.NoError(t, err)
	res := drain(t, e)
	assert.True(t, res.Found)
}

// flakyGraph fails to list the neighbours of bad.
type flakyGraph struct {
	*core.Graph[string]
	bad string
}

var errBoom = errors.New("boom")

func (f flakyGraph) NeighborIDs(id string) ([]string, error) {
	if id == f.bad {
		return nil, errBoom
	}
	return f.Graph.NeighborIDs(id)
}

func TestAdvance_NeighborErrorLeavesStateIntact(t *testing.T) {
	t.Parallel()

	g := flakyGraph{Graph: edges(t, "A-B,B-C"), bad: "B"}
	e, err := traversal.New[string](g, "A", "C", traversal.BFS)
	require.NoError(t, err)
	_, err = e.Advance()
	require.NoError(t, err)

	before := struct {
		log      []traversal.Operation[string]
		frontier []string
		visited  []string
		steps    int
	}{e.Log(), e.Frontier(), e.Visited(), e.Steps()}

	_, err = e.Advance()
	require.ErrorIs(t, err, traversal.ErrNeighbors)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, traversal.Running, e.State())
	assert.Equal(t, before.log, e.Log())
	assert.Equal(t, before.frontier, e.Frontier())
	assert.Equal(t, before.visited, e.Visited())
	assert.Equal(t, before.steps, e.Steps())
}

func TestIntIDs(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))

	e, err := traversal.New[int](g, 1, 3, traversal.BFS)
	require.NoError(t, err)
	res := drain(t, e)
	assert.Equal(t, []int{1, 3}, res.Path)
}

func TestRun(t *testing.T) {
	t.Parallel()

	e, err := traversal.New[string](edges(t, "A-B,B-C"), "A", "C", traversal.DFS)
	require.NoError(t, err)
	res, err := traversal.Run(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)

	e, err = traversal.New[string](edges(t, "A-B,B-C"), "A", "C", traversal.DFS)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = traversal.Run(ctx, e)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, e.Steps())
	assert.Equal(t, traversal.Running, e.State())
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]traversal.Algorithm{
		"bfs": traversal.BFS, " DFS ": traversal.DFS, "Dls": traversal.DLS,
	} {
		got, err := traversal.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		again, err := traversal.ParseAlgorithm(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}

	_, err := traversal.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, traversal.ErrInvalidParameter)
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Algorithm(9)", traversal.Algorithm(9).String())
	assert.Equal(t, "Enqueue", traversal.Enqueue.String())
	assert.Equal(t, "OpKind(9)", traversal.OpKind(9).String())
	assert.Equal(t, "Idle", traversal.RunState(0).String())
	assert.Equal(t, "Exhausted", traversal.Exhausted.String())
	assert.True(t, traversal.Found.Terminal())
	assert.False(t, traversal.Running.Terminal())
	assert.True(t, traversal.Operation[int]{Kind: traversal.Push}.IsDiscovery())
	assert.False(t, traversal.Operation[int]{Kind: traversal.Pop}.IsDiscovery())
}
