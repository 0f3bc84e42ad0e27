package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/controller"
	"github.com/roach88/shelf/internal/movie"
)

// AddResult is the JSON payload of a successful add.
type AddResult struct {
	Movie movie.Movie `json:"movie"`
	Count int         `json:"count"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <location>",
		Short: "Save a movie and the binder it is filed in",
		Long: `Save a movie and the binder it is filed in.

Both values are trimmed and must be non-empty. Only digits and '.' are kept
from the location and its leading whole number is stored, so "12a3.5" is
stored as binder 123 and "abc" as binder 0.

Examples:
  shelf add Inception 42
  shelf add "The Thing" 4`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return addMovie(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func addMovie(opts *RootOptions, name, location string, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	formatter := opts.formatter(cmd)

	s, err := openSession(ctx, opts, cmd, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	outcome, err := s.ctrl.Submit(ctx, name, location)
	switch outcome {
	case controller.Rejected:
		const msg = "title and binder are required"
		_ = formatter.Error(CodeInvalidInput, msg, nil)
		return NewExitError(ExitFailure, msg)
	case controller.Failed:
		_ = formatter.Error(errorCode(err), "failed to save movie", err.Error())
		return WrapExitError(ExitFailure, "failed to save movie", err)
	}

	// Saved, but the follow-up reload failed: the row is on disk.
	if err != nil {
		return WrapExitError(ExitFailure, "movie saved but list could not be reloaded", err)
	}

	if opts.Format == "json" {
		saved, ok := s.ctrl.LastSaved()
		if !ok {
			return NewExitError(ExitFailure, "movie saved but not found in the reloaded list")
		}
		return formatter.Success(AddResult{Movie: saved, Count: s.ctrl.RowCount()})
	}
	return formatter.Success("Movie saved successfully")
}
