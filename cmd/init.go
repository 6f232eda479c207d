package cmd

import (
	"fmt"

	"github.com/josephlewis42/which/core/config"
	"github.com/spf13/cobra"
)

// newInitCmd writes the default configuration.
func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write the default configuration file.",
		Long: `Write the default configuration file to DIR, or to the user's XDG config
directory if DIR isn't given. Existing files aren't overwritten.`,
		Args: cobra.MaximumNArgs(1),
		// The config being initialized may not exist yet.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			dir := config.UserDir()
			if len(args) > 0 {
				dir = args[0]
			}

			path, err := config.Initialize(opts.fsys, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
}
