package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/movie"
)

// RemoveResult is the JSON payload of a successful rm.
type RemoveResult struct {
	Deleted movie.Movie `json:"deleted"`
	Count   int         `json:"count"`
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <position>",
		Aliases: []string{"delete"},
		Short:   "Delete the movie at a list position",
		Long: `Delete the movie at the given position of "shelf list".

Positions start at 1. The list is reloaded after every delete attempt;
a failed delete is reported and exits with status 1.

Examples:
  shelf rm 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeMovie(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func removeMovie(opts *RootOptions, arg string, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	formatter := opts.formatter(cmd)

	position, err := strconv.Atoi(arg)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid position %q: must be a whole number", arg))
	}

	s, err := openSession(ctx, opts, cmd, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if position < 1 || position > s.ctrl.RowCount() {
		msg := fmt.Sprintf("no movie at position %d (list has %d)", position, s.ctrl.RowCount())
		_ = formatter.Error(CodeNoSuchRow, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	target := s.ctrl.RowAt(position - 1)
	if err := s.ctrl.RemoveAt(ctx, position-1); err != nil {
		_ = formatter.Error(errorCode(err), "failed to delete movie", err.Error())
		return WrapExitError(ExitFailure, "failed to delete movie", err)
	}

	if opts.Format == "json" {
		remaining, err := s.store.Count(ctx)
		if err != nil {
			_ = formatter.Error(errorCode(err), "failed to count movies", err.Error())
			return WrapExitError(ExitFailure, "failed to count movies", err)
		}
		return formatter.Success(RemoveResult{Deleted: target, Count: remaining})
	}
	return formatter.Success(fmt.Sprintf("Deleted %q", target.Name))
}
