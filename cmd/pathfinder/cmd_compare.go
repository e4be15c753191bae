package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/animate"
	"github.com/katalvlaran/pathfinder/metrics"
	"github.com/katalvlaran/pathfinder/traversal"
)

func newCompareCmd(a *app) *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run BFS, DFS and DLS side by side on the same graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.buildGraph()
			if err != nil {
				return err
			}
			start, end := a.endpoints(g)
			m := metrics.New()

			sums, err := animate.Compare[string](cmd.Context(), g, start, end, animate.CompareOptions{
				DepthLimit: a.cfg.DepthLimit,
				Interval:   a.cfg.Interval(),
				Logger:     a.logger,
				Recorder:   m,
			}, traversal.BFS, traversal.DFS, traversal.DLS)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s → %s over %d nodes, %d edges (DLS limit %d)\n",
				start, end, g.VertexCount(), g.EdgeCount(), a.cfg.DepthLimit)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tSTATE\tSTEPS\tHOPS\tPATH")
			for _, s := range sums {
				hops := "-"
				if len(s.Path) > 0 {
					hops = fmt.Sprint(len(s.Path) - 1)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", s.Algorithm, s.State, s.Steps, hops, strings.Join(s.Path, " → "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if metricsFile != "" {
				return m.WriteTextfile(metricsFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	return cmd
}
