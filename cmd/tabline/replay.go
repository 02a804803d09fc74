package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/young1lin/tabline/internal/host"
	"github.com/young1lin/tabline/internal/store"
)

func newReplayCmd(opts *rootOptions) *cobra.Command {
	var list, remove bool
	var cols int
	cmd := &cobra.Command{
		Use:   "replay [NAME]",
		Short: "Replay a recorded event stream, or list recordings",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bar, cfg, err := opts.loadBar(ctx)
			if err != nil {
				return err
			}

			db, err := opts.deps.OpenDB(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer db.Close()

			if list {
				return listRecordings(cmd, db)
			}
			if remove {
				return db.DeleteRecording(ctx, args[0])
			}

			events, err := db.Events(ctx, args[0])
			if errors.Is(err, store.ErrRecordingNotFound) {
				return fmt.Errorf("no recording named %q (see tabline replay --list)", args[0])
			}
			if err != nil {
				return err
			}

			for _, ev := range events {
				if ev.Type == host.EventRender && cols > 0 {
					ev.Cols = cols
				}
				if err := host.Dispatch(ctx, bar, ev, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list recordings")
	cmd.Flags().BoolVar(&remove, "delete", false, "delete the recording instead of replaying it")
	cmd.Flags().IntVar(&cols, "cols", 0, "override the recorded render widths")
	return cmd
}

func listRecordings(cmd *cobra.Command, db *store.DB) error {
	recordings, err := db.ListRecordings(cmd.Context())
	if err != nil {
		return err
	}
	if len(recordings) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "no recordings")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "STARTED", "EVENTS")
	for _, r := range recordings {
		t.Row(r.Name, r.StartedAt.Format("2006-01-02 15:04:05"), strconv.Itoa(r.Events))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
