package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/josephlewis42/which/core/which"
	"github.com/spf13/cobra"
)

type lookupOptions struct {
	all        bool
	canonical  bool
	path       string
	cwd        string
	noCwd      bool
	showErrors bool
}

// applyConfig fills in options the user didn't set from the config file.
func (lo *lookupOptions) applyConfig(cmd *cobra.Command, opts *rootOptions) {
	flags := cmd.Flags()
	if !flags.Changed("canonical") {
		lo.canonical = opts.config.Canonical
	}
	if !flags.Changed("path") {
		lo.path = opts.config.Path
	}
	if !flags.Changed("no-cwd") {
		lo.noCwd = opts.config.NoCwd
	}
	if !flags.Changed("show-errors") {
		lo.showErrors = opts.config.ShowErrors
	}
}

// nonFatalHandler prints skipped files if --show-errors is set. Missing
// files are expected for most candidates and aren't shown.
func nonFatalHandler(cmd *cobra.Command, opts *rootOptions, show bool) which.NonFatalErrorHandler {
	return which.NonFatalErrorHandlerFunc(func(err error) {
		opts.log.Debug().Err(err).Msg("skipped")
		if show && !errors.Is(err, fs.ErrNotExist) {
			opts.printWarning(cmd, err)
		}
	})
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	lo := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Print the path of each named executable.",
		Long: `Print the path of the executable each NAME would run.

Names without a slash are looked for in each directory of PATH in order.
Names with a slash are resolved against the working directory.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			lo.applyConfig(cmd, opts)
			if lo.noCwd && lo.cwd != "" {
				return errors.New("--cwd and --no-cwd can't be used together")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			base := which.NewWithOS(opts.os).
				Logger(opts.log).
				NonFatalErrorHandler(nonFatalHandler(cmd, opts, lo.showErrors)).
				Canonical(lo.canonical)
			if lo.path != "" {
				base = base.CustomPathList(lo.path)
			}
			switch {
			case lo.cwd != "":
				base = base.CustomCwd(lo.cwd)
			case lo.noCwd:
				base = base.SystemCwd(false)
			}

			failed := false
			for _, name := range args {
				if err := lookup(cmd, base.BinaryName(name), lo.all); err != nil {
					opts.printError(cmd, err)
					failed = true
				}
			}

			if failed {
				cmd.SilenceErrors = true
				return errNotAllFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&lo.all, "all", "a", false, "print every match instead of only the first")
	cmd.Flags().BoolVar(&lo.canonical, "canonical", false, "resolve symlinks in the printed paths")
	cmd.Flags().StringVar(&lo.path, "path", "", "directories to search instead of PATH")
	cmd.Flags().StringVar(&lo.cwd, "cwd", "", "directory to resolve names containing a slash against")
	cmd.Flags().BoolVar(&lo.noCwd, "no-cwd", false, "don't resolve names containing a slash against the working directory")
	cmd.Flags().BoolVar(&lo.showErrors, "show-errors", false, "print files and directories that were skipped because of errors")

	return cmd
}

func lookup(cmd *cobra.Command, cfg which.Config, all bool) error {
	if !all {
		found, err := cfg.FirstResult()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), found)
		return nil
	}

	results, err := cfg.AllResults()
	if err != nil {
		return err
	}

	count := 0
	for found := range results.All() {
		fmt.Fprintln(cmd.OutOrStdout(), found)
		count++
	}
	if err := results.Err(); err != nil {
		return err
	}
	if count == 0 {
		return cfg.NotFound()
	}
	return nil
}
