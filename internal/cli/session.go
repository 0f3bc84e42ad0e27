package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/controller"
	"github.com/roach88/shelf/internal/store"
)

// session is one opened inventory: the store, a controller bound to the
// caller's surface, and the logger both share.
type session struct {
	store  *store.Store
	ctrl   *controller.Controller
	logger *slog.Logger
}

// openSession opens the configured database and loads the list.
// A storage failure is fatal for the command and maps to ExitCommandError.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command, surface controller.Surface) (*session, error) {
	level, _ := parseLevel(opts.Config.LogLevel)
	logger := NewLogger(cmd.ErrOrStderr(), level, opts.Verbose)

	if err := opts.Config.EnsureDir(); err != nil {
		logger.Error("failed to prepare data directory", "error", err)
		return nil, WrapExitError(ExitCommandError, "failed to prepare data directory", err)
	}

	logger.Debug("opening database", "path", opts.Config.Database)
	st, err := store.Open(opts.Config.Database)
	if err != nil {
		logger.Error("failed to open database", "path", opts.Config.Database, "error", err)
		_ = opts.formatter(cmd).Error(errorCode(err), "failed to open database", err.Error())
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	ctrl := controller.New(st, surface, logger)
	if err := ctrl.Reload(ctx); err != nil {
		st.Close()
		_ = opts.formatter(cmd).Error(errorCode(err), "failed to load movies", err.Error())
		return nil, WrapExitError(ExitCommandError, "failed to load movies", err)
	}
	logger.Debug("database ready", "path", st.Path(), "rows", ctrl.RowCount())

	return &session{store: st, ctrl: ctrl, logger: logger}, nil
}

// Close releases the database connection.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
