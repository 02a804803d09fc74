package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/young1lin/tabline/internal/monitor"
	"github.com/young1lin/tabline/tui"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var watchPath string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive preview: cycle modes, open and close tabs, resize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bar, cfg, err := opts.loadBar(ctx)
			if err != nil {
				return err
			}
			opts.checkUpdateInBackground(ctx, cfg)

			var w monitor.WatcherInterface
			if watchPath != "" {
				w, err = opts.deps.NewWatcher(watchPath)
				if err != nil {
					return fmt.Errorf("failed to watch %s: %w", watchPath, err)
				}
				defer w.Close()
			}

			p := tea.NewProgram(
				tui.NewModel(bar, w),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			return opts.deps.RunProgram(p)
		},
	}
	cmd.Flags().StringVarP(&watchPath, "watch", "w", "", "follow a snapshot file")
	return cmd
}
