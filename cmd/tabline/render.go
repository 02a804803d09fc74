package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/young1lin/tabline/internal/host"
	"pkt.systems/pslog"
)

// DefaultCols is the render width when neither a flag nor the input
// names one
const DefaultCols = 80

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var snapshotPath string
	var cols int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one line from a snapshot",
		Long: `Render reads a workspace snapshot from --snapshot or standard input and
prints one status line. The width comes from --cols, then the snapshot's
"cols" field, then 80.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(cmd, snapshotPath)
			if err != nil {
				return err
			}

			bar, _, err := opts.loadBar(cmd.Context())
			if err != nil {
				return err
			}
			if err := bar.Apply(snap); err != nil {
				pslog.Ctx(cmd.Context()).Warn("ignoring rejected snapshot events", "error", err)
			}

			width := pickCols(cols, snap.Cols)
			return host.Dispatch(cmd.Context(), bar, host.RenderEvent(width), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "snapshot file (default: standard input)")
	cmd.Flags().IntVar(&cols, "cols", 0, "render width in columns")
	return cmd
}

func readSnapshot(cmd *cobra.Command, path string) (host.Snapshot, error) {
	if path != "" {
		return host.LoadSnapshot(path)
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return host.Snapshot{}, errors.New("no snapshot: pass --snapshot or pipe one on standard input")
	}
	return host.ReadSnapshot(in)
}

func pickCols(flag, fromInput int) int {
	switch {
	case flag > 0:
		return flag
	case fromInput > 0:
		return fromInput
	default:
		return DefaultCols
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var recordName string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply JSON events from standard input, printing a line per render request",
		Long: `Run reads newline-delimited JSON events from standard input:

  {"type":"mode","mode":"locked"}
  {"type":"sessions","sessions":[{"name":"work","is_current_session":true}]}
  {"type":"tabs","tabs":[{"position":0,"name":"editor","active":true}]}
  {"type":"render","cols":120}

Each render event prints one line. With --record the events are also
stored in the history database for replay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bar, cfg, err := opts.loadBar(ctx)
			if err != nil {
				return err
			}
			opts.checkUpdateInBackground(ctx, cfg)

			var rec host.Recorder
			if recordName != "" {
				db, err := opts.deps.OpenDB(cfg.HistoryPath())
				if err != nil {
					return fmt.Errorf("failed to open history: %w", err)
				}
				defer db.Close()

				r, err := db.NewRecorder(ctx, recordName)
				if err != nil {
					return fmt.Errorf("failed to start recording: %w", err)
				}
				pslog.Ctx(ctx).Info("recording events", "name", recordName, "path", cfg.HistoryPath())
				rec = r
			}

			err = host.Run(ctx, bar, cmd.InOrStdin(), cmd.OutOrStdout(), rec)
			if errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&recordName, "record", "r", "", "store events under this recording name")
	return cmd
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var cols int
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print a line each time a snapshot file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bar, cfg, err := opts.loadBar(ctx)
			if err != nil {
				return err
			}
			opts.checkUpdateInBackground(ctx, cfg)

			w, err := opts.deps.NewWatcher(args[0])
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", args[0], err)
			}
			defer w.Close()

			logger := pslog.Ctx(ctx).With("file", args[0])
			logger.Debug("watching snapshot")
			return watchLoop(cmd, bar, w.Snapshots(), w.Errors(), cols, logger)
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 0, "render width in columns (default: the snapshot's, then 80)")
	return cmd
}

func watchLoop(cmd *cobra.Command, bar *host.Bar, snaps <-chan host.Snapshot, errs <-chan error, cols int, logger pslog.Logger) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for {
		select {
		case <-ctx.Done():
			return nil

		case snap, ok := <-snaps:
			if !ok {
				return nil
			}
			if err := bar.Apply(snap); err != nil {
				logger.Warn("ignoring rejected snapshot events", "error", err)
			}
			if err := host.Dispatch(ctx, bar, host.RenderEvent(pickCols(cols, snap.Cols)), out); err != nil {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				// Keep draining snapshots until that channel closes too
				errs = nil
				continue
			}
			logger.Warn("snapshot watch error", "error", err)
		}
	}
}
