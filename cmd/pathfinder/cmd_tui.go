package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Animate the search in an interactive terminal UI",
		Long: `Open a full-screen view of the graph that colours nodes as the search
expands them. Click two nodes to choose start and end.

With --watch the config file is followed and every valid edit restarts the
animation with the new settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("tui needs an interactive terminal; use 'pathfinder run' instead")
			}
			if watch && a.configPath == "" {
				return errors.New("--watch requires --config")
			}

			m, err := tui.New(a.cfg)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))

			if watch {
				loader, err := config.NewLoader(a.configPath)
				if err != nil {
					return err
				}
				loader.OnChange(func(c config.Config) {
					a.logger.Info("config reloaded", "path", a.configPath)
					p.Send(tui.ConfigMsg{Config: c})
				})
				loader.OnError(func(err error) {
					a.logger.Warn("config reload skipped", "err", err)
				})
				stop, err := loader.Watch()
				if err != nil {
					return fmt.Errorf("watch %s: %w", a.configPath, err)
				}
				defer stop()
			}

			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file on change")
	return cmd
}
