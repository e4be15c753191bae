package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/animate"
	"github.com/katalvlaran/pathfinder/metrics"
	"github.com/katalvlaran/pathfinder/traversal"
)

func newRunCmd(a *app) *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate one search in plain text",
		Long: `Run the configured algorithm and print each step's frontier operations
as it happens, paced by --interval. Ctrl-C stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.buildGraph()
			if err != nil {
				return err
			}
			e, err := a.newEngine(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s → %s over %d nodes, %d edges\n",
				e.Algorithm(), e.Start(), e.End(), g.VertexCount(), g.EdgeCount())

			m := metrics.New()
			d := animate.NewDriver[string](e)
			d.Interval = a.cfg.Interval()
			d.Logger = a.logger
			d.Recorder = m
			d.OnStep = func(r traversal.StepResult[string]) {
				printStep(out, e.Steps(), r)
			}

			sum, runErr := d.Run(cmd.Context())
			printSummary(out, sum)
			if metricsFile != "" {
				if err := m.WriteTextfile(metricsFile); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	return cmd
}

// printStep writes one line per Advance: step number, removed node, ops.
func printStep(w io.Writer, n int, r traversal.StepResult[string]) {
	if len(r.Ops) == 0 {
		fmt.Fprintf(w, "%3d  frontier empty\n", n)
		return
	}
	ops := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		ops[i] = op.String()
	}
	fmt.Fprintf(w, "%3d  %-4s %s\n", n, r.Current, strings.Join(ops, ", "))
}

func printSummary(w io.Writer, s animate.Summary[string]) {
	switch s.State {
	case traversal.Found:
		fmt.Fprintf(w, "Found in %d steps: %s\n", s.Steps, strings.Join(s.Path, " → "))
	case traversal.Exhausted:
		fmt.Fprintf(w, "Exhausted after %d steps: no path\n", s.Steps)
	default:
		fmt.Fprintf(w, "Stopped after %d steps (%s)\n", s.Steps, s.State)
	}
}
