package config

import (
	"time"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/layout"
	"github.com/katalvlaran/pathfinder/traversal"
)

// Config is the top-level YAML structure.
type Config struct {
	Algorithm  string     `yaml:"algorithm"`
	DepthLimit int        `yaml:"depth_limit"`
	IntervalMs int        `yaml:"interval_ms"`
	Start      string     `yaml:"start"`  // empty = first vertex
	End        string     `yaml:"end"`    // empty = last vertex
	Layout     string     `yaml:"layout"` // "spring" or "circular"
	Graph      GraphConf  `yaml:"graph"`
	Canvas     CanvasConf `yaml:"canvas"`
}

// GraphConf selects how the graph is generated.
type GraphConf struct {
	MinNodes       int     `yaml:"min_nodes"`
	MaxNodes       int     `yaml:"max_nodes"`
	MinProbability float64 `yaml:"min_probability"`
	MaxProbability float64 `yaml:"max_probability"`
	Seed           int64   `yaml:"seed"`
	IDs            string  `yaml:"ids"`   // "letters" or "decimal"
	Edges          string  `yaml:"edges"` // explicit "A-B,B-C" list; overrides random generation
}

// CanvasConf is the virtual drawing surface for layouts.
type CanvasConf struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// Layout names accepted in layout.
const (
	LayoutSpring   = "spring"
	LayoutCircular = "circular"
)

// ID scheme names accepted in graph.ids.
const (
	IDsLetters = "letters"
	IDsDecimal = "decimal"
)

// Default returns the stock settings: BFS, DLS limit 3, a 300ms step, a
// random graph of 5–10 nodes with edge probability 0.2–0.6 seeded with 42,
// on an 800×600 canvas with 50 padding.
func Default() Config {
	return Config{
		Algorithm:  "bfs",
		DepthLimit: 3,
		IntervalMs: 300,
		Layout:     LayoutSpring,
		Graph: GraphConf{
			MinNodes:       5,
			MaxNodes:       10,
			MinProbability: 0.2,
			MaxProbability: 0.6,
			Seed:           42,
			IDs:            IDsLetters,
		},
		Canvas: CanvasConf{Width: 800, Height: 600, Padding: 50},
	}
}

// Interval returns the step cadence.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// TraversalAlgorithm parses Algorithm.
func (c Config) TraversalAlgorithm() (traversal.Algorithm, error) {
	return traversal.ParseAlgorithm(c.Algorithm)
}

// TraversalOptions returns the engine options implied by the config.
// The depth limit is only passed for DLS.
func (c Config) TraversalOptions() []traversal.Option {
	if a, err := c.TraversalAlgorithm(); err == nil && a == traversal.DLS {
		return []traversal.Option{traversal.WithDepthLimit(c.DepthLimit)}
	}
	return nil
}

// Positions lays g out in unit space with the configured layout.
func (c Config) Positions(g *core.Graph[string]) (layout.Positions[string], error) {
	if c.Layout == LayoutCircular {
		return layout.Circular(g.Vertices()), nil
	}
	return layout.Spring[string](g)
}

// LayoutCanvas converts the canvas section.
func (c Config) LayoutCanvas() layout.Canvas {
	return layout.Canvas{Width: c.Canvas.Width, Height: c.Canvas.Height, Padding: c.Canvas.Padding}
}

// BuilderOptions returns the seed and ID scheme for builder.BuildGraph.
func (c Config) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(c.Graph.Seed)}
	if c.Graph.IDs == IDsLetters {
		opts = append(opts, builder.WithExcelColumnIDs())
	}
	return opts
}

// GraphConstructor returns EdgeList when graph.edges is set, and a
// RandomSparseRange over the configured bounds otherwise.
func (c Config) GraphConstructor() builder.Constructor {
	if c.Graph.Edges != "" {
		return builder.EdgeList(c.Graph.Edges)
	}
	return builder.RandomSparseRange(c.Graph.MinNodes, c.Graph.MaxNodes, c.Graph.MinProbability, c.Graph.MaxProbability)
}
