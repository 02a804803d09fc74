package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/young1lin/tabline/internal/host"
	"github.com/young1lin/tabline/internal/monitor"
	"github.com/young1lin/tabline/internal/statusbar/config"
	"github.com/young1lin/tabline/internal/store"
	"github.com/young1lin/tabline/internal/update"
	"pkt.systems/pslog"
)

// deps contains the collaborators commands reach outside the process with
type deps struct {
	OpenDB     func(string) (*store.DB, error)
	NewWatcher func(string) (monitor.WatcherInterface, error)
	RunProgram func(*tea.Program) error
	NewChecker func(version string) *update.Checker
}

func defaultDeps() *deps {
	return &deps{
		OpenDB: store.Open,
		NewWatcher: func(path string) (monitor.WatcherInterface, error) {
			return monitor.NewWatcher(path)
		},
		RunProgram: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		NewChecker: func(version string) *update.Checker {
			return update.NewChecker(version)
		},
	}
}

// rootOptions are shared by every subcommand
type rootOptions struct {
	configPath string
	projectDir string
	deps       *deps
}

func newRootCmd(d *deps) *cobra.Command {
	opts := &rootOptions{deps: d}
	root := &cobra.Command{
		Use:           "tabline",
		Short:         "Single-line workspace status bar with mode, session, tabs and clock",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	root.PersistentFlags().StringVar(&opts.projectDir, "project", ".", "directory searched for "+config.ProjectFile)

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	root.AddCommand(newVersionCmd(opts))

	return root
}

// loadConfig loads the configuration for a command
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath, o.projectDir)
}

// loadBar loads the configuration and builds a bar from it. A bad clock
// timezone is logged and the clock falls back to UTC.
func (o *rootOptions) loadBar(ctx context.Context) (*host.Bar, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	bar, err := host.Load(host.Options{Config: cfg})
	if err != nil {
		pslog.Ctx(ctx).Warn("clock timezone unavailable, using UTC", "timezone", cfg.Clock.Timezone, "error", err)
	}
	return bar, cfg, nil
}

// checkUpdateInBackground logs when a newer release exists. It never
// blocks the caller.
func (o *rootOptions) checkUpdateInBackground(ctx context.Context, cfg *config.Config) {
	if !cfg.Update.Check || o.deps.NewChecker == nil {
		return
	}
	go func() {
		release, err := o.deps.NewChecker(update.Version).Check(ctx, false)
		if err != nil {
			pslog.Ctx(ctx).Debug("update check failed", "error", err)
			return
		}
		if release != nil {
			pslog.Ctx(ctx).Info("update available", "current", update.Version, "latest", release.TagName, "url", release.HTMLURL)
		}
	}()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
