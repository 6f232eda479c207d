package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/which/core/config"
	"github.com/josephlewis42/which/core/logging"
	"github.com/josephlewis42/which/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// errNotAllFound is returned after the missing names have been reported.
var errNotAllFound = errors.New("not all executables were found")

// rootOptions is the state shared by every subcommand.
type rootOptions struct {
	os   vos.VOS
	fsys afero.Fs

	// searchConfig locates the user's config file when --config isn't set.
	searchConfig func() (string, error)

	cfgPath   string
	verbosity int

	config  *config.Configuration
	noColor bool
	log     zerolog.Logger
}

func (o *rootOptions) loadConfig() error {
	path := o.cfgPath
	if path == "" {
		found, err := o.searchConfig()
		if err != nil {
			o.config = config.Default()
			return nil
		}
		path = found
	}

	configuration, err := config.Load(o.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("couldn't load config, did you run init? %w", err)
	}
	o.config = configuration
	return err
}

// isTerminal reports whether w is a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor decides whether output to w is colored.
func (o *rootOptions) useColor(w io.Writer) bool {
	switch o.config.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(w)
}

func (o *rootOptions) colorize(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if o.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func (o *rootOptions) printError(cmd *cobra.Command, err error) {
	o.colorize(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
}

func (o *rootOptions) printWarning(cmd *cobra.Command, err error) {
	o.colorize(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "warning:", err)
}

func newRootCmd(virtOS vos.VOS, fsys afero.Fs) *cobra.Command {
	opts := &rootOptions{
		os:           virtOS,
		fsys:         fsys,
		searchConfig: config.Search,
	}

	rootCmd := &cobra.Command{
		Use:   "which",
		Short: "Locate executables",
		Long: `Locate executables in the directories of PATH the same way a shell
would, without running a shell.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(); err != nil {
				return err
			}

			verbosity := opts.verbosity
			if !cmd.Flags().Changed("verbose") {
				verbosity = opts.config.Verbosity
			}

			// Errors, warnings and logs all go to stderr.
			opts.noColor = !opts.useColor(cmd.ErrOrStderr())
			logging.SetupLogger(verbosity, cmd.ErrOrStderr(), opts.noColor)
			opts.log = logging.GetLogger("which")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config file or directory (default: search the XDG config directories)")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "log more, repeat for more detail")

	rootCmd.AddCommand(
		newLookupCmd(opts),
		newMatchCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the which command against the host OS.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCmd(vos.NewRealOS(), afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
