package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/movie"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Movies []movie.Movie `json:"movies"`
	Count  int           `json:"count"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every movie in storage order",
		Long: `List every movie in the order the database returns them.

Positions shown start at 1 and are the ones accepted by "shelf rm".

Examples:
  shelf list
  shelf list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listMovies(rootOpts, cmd)
		},
	}

	return cmd
}

func listMovies(opts *RootOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)

	s, err := openSession(ctx, opts, cmd, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	rows := s.ctrl.Rows()
	if opts.Format == "json" {
		return opts.formatter(cmd).Success(ListResult{Movies: rows, Count: len(rows)})
	}

	renderRows(cmd.OutOrStdout(), rows)
	return nil
}

// renderRows writes one two-line entry per movie: the 1-based position and
// title, then the binder detail.
func renderRows(w io.Writer, rows []movie.Movie) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No movies yet.")
		return
	}
	for i, m := range rows {
		fmt.Fprintf(w, "%d. %s\n", i+1, m.Name)
		fmt.Fprintf(w, "   %s\n", m.Detail())
	}
}
