package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/traversal"
)

// app carries state shared by all subcommands: parsed flags, the resolved
// config and the logger. PersistentPreRunE fills cfg and logger.
type app struct {
	configPath string
	logLevel   string

	// overrides; applied only when the flag was set
	algorithm  string
	depthLimit int
	interval   time.Duration
	seed       int64
	edges      string
	start      string
	end        string
	layout     string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Step-by-step BFS, DFS and DLS over undirected graphs",
		Long: `pathfinder runs breadth-first, depth-first and depth-limited search one
expansion at a time and shows every queue/stack operation as it happens.

Graphs are either generated (G(n,p) with n and p drawn from the configured
ranges, seeded) or given explicitly with --edges "A-B,B-C".

Examples:
  pathfinder run --algo dfs
  pathfinder run --edges "S-A,S-B,A-G" --algo dls --depth 1 --interval 0
  pathfinder compare --seed 7
  pathfinder tui --config pathfinder.yaml --watch
  pathfinder dot --steps 3 | dot -Kneato -Tsvg > step3.svg`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVarP(&a.algorithm, "algo", "a", "", "algorithm: bfs, dfs or dls")
	pf.IntVarP(&a.depthLimit, "depth", "d", 0, "DLS depth limit")
	pf.DurationVarP(&a.interval, "interval", "i", 0, "pause between steps (0 = no pause)")
	pf.Int64Var(&a.seed, "seed", 0, "random graph seed")
	pf.StringVar(&a.edges, "edges", "", `explicit edge list, e.g. "A-B,B-C,C-D"`)
	pf.StringVar(&a.start, "start", "", "start node (default: first vertex)")
	pf.StringVar(&a.end, "end", "", "end node (default: last vertex)")
	pf.StringVar(&a.layout, "layout", "", "node layout: spring or circular")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newTUICmd(a),
		newDotCmd(a),
		newGraphCmd(a),
	)
	return root
}

// setup builds the logger, loads the config and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
		a.logger.Info("config loaded", "path", a.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("algo") {
		cfg.Algorithm = a.algorithm
	}
	if flags.Changed("depth") {
		cfg.DepthLimit = a.depthLimit
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = int(a.interval / time.Millisecond)
	}
	if flags.Changed("seed") {
		cfg.Graph.Seed = a.seed
	}
	if flags.Changed("edges") {
		cfg.Graph.Edges = a.edges
	}
	if flags.Changed("start") {
		cfg.Start = a.start
	}
	if flags.Changed("end") {
		cfg.End = a.end
	}
	if flags.Changed("layout") {
		cfg.Layout = a.layout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// buildGraph generates the configured graph.
func (a *app) buildGraph() (*core.Graph[string], error) {
	return builder.BuildGraph(a.cfg.BuilderOptions(), a.cfg.GraphConstructor())
}

// endpoints resolves start and end: configured values verbatim (traversal.New
// rejects unknown ones), otherwise the first and last vertex.
func (a *app) endpoints(g *core.Graph[string]) (string, string) {
	vs := g.Vertices()
	start, end := vs[0], vs[len(vs)-1]
	if a.cfg.Start != "" {
		start = a.cfg.Start
	}
	if a.cfg.End != "" {
		end = a.cfg.End
	}
	return start, end
}

// newEngine starts a run of the configured algorithm over g.
func (a *app) newEngine(g *core.Graph[string]) (*traversal.Engine[string], error) {
	algo, err := a.cfg.TraversalAlgorithm()
	if err != nil {
		return nil, err
	}
	start, end := a.endpoints(g)
	return traversal.New[string](g, start, end, algo, a.cfg.TraversalOptions()...)
}
