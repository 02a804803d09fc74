package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/young1lin/tabline/internal/update"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	var check bool
	var autoCheck string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, update.String()); err != nil {
				return err
			}
			if autoCheck != "" {
				if err := setAutoCheck(opts.deps.NewChecker(update.Version), autoCheck); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "background update check %s\n", autoCheck); err != nil {
					return err
				}
			}
			if !check {
				return nil
			}

			release, err := opts.deps.NewChecker(update.Version).Check(cmd.Context(), true)
			if err != nil {
				return err
			}
			if release == nil {
				_, err = fmt.Fprintln(out, "up to date")
				return err
			}
			_, err = fmt.Fprintf(out, "update available: %s\n%s\n", release.TagName, release.HTMLURL)
			return err
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")
	cmd.Flags().StringVar(&autoCheck, "auto-check", "", `turn the background update check "on" or "off"`)
	return cmd
}

func setAutoCheck(c *update.Checker, value string) error {
	switch value {
	case "on":
		return c.SetOptOut(false)
	case "off":
		return c.SetOptOut(true)
	default:
		return fmt.Errorf("invalid --auto-check value %q: want on or off", value)
	}
}
