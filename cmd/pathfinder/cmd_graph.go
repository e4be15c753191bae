package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/layout"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the configured graph, its adjacency and canvas positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.buildGraph()
			if err != nil {
				return err
			}
			pos, err := a.cfg.Positions(g)
			if err != nil {
				return err
			}
			if pos, err = layout.Scale(pos, a.cfg.LayoutCanvas()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d nodes, %d edges\n", g.VertexCount(), g.EdgeCount())
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NODE\tPOS\tNEIGHBOURS")
			for _, v := range g.Vertices() {
				nbrs, err := g.NeighborIDs(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\n", v, pos[v], nbrs)
			}
			return tw.Flush()
		},
	}
}
