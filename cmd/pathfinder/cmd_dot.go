package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/export"
	"github.com/katalvlaran/pathfinder/layout"
)

func newDotCmd(a *app) *cobra.Command {
	var (
		steps  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write a Graphviz snapshot of the search after N steps",
		Long: `Advance the search --steps times (-1 runs to completion) and write the
graph as DOT, coloured by search state and pinned to the configured layout.
Render with: dot -Kneato -n -Tpng`,
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
			for i := 0; (steps < 0 || i < steps) && !e.State().Terminal(); i++ {
				if _, err := e.Advance(); err != nil {
					return err
				}
			}

			pos, err := a.cfg.Positions(g)
			if err != nil {
				return err
			}
			if pos, err = layout.Scale(pos, a.cfg.LayoutCanvas()); err != nil {
				return err
			}

			label := fmt.Sprintf("%s %s → %s · step %d · %s", e.Algorithm(), e.Start(), e.End(), e.Steps(), e.State())
			text, err := export.DOT[string](g, e, export.WithPositions(pos), export.WithLabel[string](label))
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			a.logger.Info("writing dot", "path", output, "steps", e.Steps())
			return os.WriteFile(output, []byte(text), 0o644)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", -1, "steps to take before the snapshot (-1 = until done)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
