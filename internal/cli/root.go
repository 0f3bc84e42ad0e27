package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string
	ConfigFile string

	// Config is resolved in PersistentPreRunE from defaults, the config
	// file and the flags above.
	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the shelf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "shelf - keep track of which binder every disc lives in",
		Long: `A local inventory of physical media.

Each movie has a title and the number of the binder it is filed in.
Movies are stored in a SQLite file in your user data directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default: user data directory)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to YAML config file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// resolve loads the configuration and validates the global flags.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigFile, cmd.Flags())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if !isValidFormat(cfg.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return WrapExitError(ExitCommandError, "invalid log_level", err)
	}

	o.Format = cfg.Format
	o.Config = cfg
	return nil
}

// formatter returns an OutputFormatter bound to the command's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
