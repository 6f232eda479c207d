package cmd

import (
	"fmt"
	"regexp"

	"github.com/josephlewis42/which/core/which"
	"github.com/spf13/cobra"
)

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var (
		glob       bool
		path       string
		showErrors bool
	)

	cmd := &cobra.Command{
		Use:   "match PATTERN",
		Short: "Print every executable whose name matches a pattern.",
		Long: `Print every executable in the directories of PATH whose file name matches
PATTERN, a regular expression. Use --glob for a shell style pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matcher which.Matcher
			if glob {
				g, err := which.NewGlob(args[0])
				if err != nil {
					return fmt.Errorf("invalid glob %q: %w", args[0], err)
				}
				matcher = g
			} else {
				re, err := regexp.Compile(args[0])
				if err != nil {
					return err
				}
				matcher = re
			}
			cmd.SilenceUsage = true

			if !cmd.Flags().Changed("path") {
				path = opts.config.Path
			}
			if !cmd.Flags().Changed("show-errors") {
				showErrors = opts.config.ShowErrors
			}

			cfg := which.NewWithOS(opts.os).
				Logger(opts.log).
				NonFatalErrorHandler(nonFatalHandler(cmd, opts, showErrors)).
				Pattern(matcher)
			if path != "" {
				cfg = cfg.CustomPathList(path)
			}

			if err := lookup(cmd, cfg, true); err != nil {
				opts.printError(cmd, err)
				cmd.SilenceErrors = true
				return errNotAllFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&glob, "glob", false, "treat PATTERN as a shell glob")
	cmd.Flags().StringVar(&path, "path", "", "directories to search instead of PATH")
	cmd.Flags().BoolVar(&showErrors, "show-errors", false, "print directories that were skipped because of errors")

	return cmd
}
