package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/controller"
)

const shellHelp = `Commands:
  a, add        enter a title and binder and save them
  d, delete N   delete the movie at position N
  l, list       show the list again
  h, help       show this help
  q, quit       leave the shell`

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Manage the inventory interactively",
		Long: `Open an interactive session on the inventory.

The list is shown on start and after every change. "add" asks for a title
and a binder; a blank answer keeps the value from the last attempt, which
is only cleared once a movie has been saved.

` + shellHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}

	return cmd
}

// terminalSurface renders controller signals to a terminal and holds the
// two input fields between attempts.
type terminalSurface struct {
	out      io.Writer
	ctrl     *controller.Controller
	name     string
	location string
	invalid  bool
}

func (t *terminalSurface) SetInputsValid(valid bool) {
	t.invalid = !valid
	if !valid {
		fmt.Fprintln(t.out, "! title and binder are both required")
	}
}

func (t *terminalSurface) ClearInputs() {
	t.name = ""
	t.location = ""
}

func (t *terminalSurface) RowsChanged(int) {
	// The first Reload fires before the controller is attached.
	if t.ctrl == nil {
		return
	}
	renderRows(t.out, t.ctrl.Rows())
}

// prompt shows label with the current field value and returns the answer,
// keeping current when the answer is blank. ok is false at end of input.
func (t *terminalSurface) prompt(in *bufio.Scanner, label, current string) (string, bool) {
	marker := ""
	if t.invalid {
		marker = "!"
	}
	if current != "" {
		fmt.Fprintf(t.out, "%s%s [%s]: ", marker, label, current)
	} else {
		fmt.Fprintf(t.out, "%s%s: ", marker, label)
	}
	if !in.Scan() {
		return current, false
	}
	answer := in.Text()
	if strings.TrimSpace(answer) == "" {
		return current, true
	}
	return answer, true
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	surface := &terminalSurface{out: out}

	s, err := openSession(ctx, opts, cmd, surface)
	if err != nil {
		return err
	}
	defer s.Close()

	surface.ctrl = s.ctrl
	renderRows(out, s.ctrl.Rows())

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			break
		}

		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "a", "add":
			name, ok := surface.prompt(in, "Title", surface.name)
			surface.name = name
			if !ok {
				return in.Err()
			}
			location, ok := surface.prompt(in, "Binder", surface.location)
			surface.location = location
			if !ok {
				return in.Err()
			}

			outcome, err := s.ctrl.Submit(ctx, surface.name, surface.location)
			switch {
			case outcome == controller.Saved && err == nil:
				fmt.Fprintln(out, "Movie saved successfully")
			case err != nil:
				fmt.Fprintf(out, "! could not save movie: %v\n", err)
			}

		case "d", "delete", "rm":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: delete N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > s.ctrl.RowCount() {
				fmt.Fprintf(out, "! no movie at position %s\n", fields[1])
				continue
			}
			if err := s.ctrl.RemoveAt(ctx, n-1); err != nil {
				fmt.Fprintf(out, "! could not delete movie: %v\n", err)
			}

		case "l", "list":
			renderRows(out, s.ctrl.Rows())

		case "h", "help", "?":
			fmt.Fprintln(out, shellHelp)

		case "q", "quit", "exit":
			return nil

		default:
			fmt.Fprintf(out, "unknown command %q (try \"help\")\n", fields[0])
		}
	}

	return in.Err()
}
