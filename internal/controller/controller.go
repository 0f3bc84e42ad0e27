// Package controller mediates between a display surface and the store.
//
// A Controller keeps an in-memory snapshot of the inventory table. Every
// mutation goes to the store first and is followed by a full reload; the
// snapshot is replaced wholesale, never patched.
//
// A Controller is not safe for concurrent use. All calls are expected to
// come from the single goroutine driving the display surface.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/shelf/internal/movie"
)

// Store is the persistence the controller orchestrates.
// *store.Store satisfies it.
type Store interface {
	Insert(ctx context.Context, name string, location int) (int64, error)
	SelectAll(ctx context.Context) ([]movie.Movie, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Surface receives the signals a display needs to render the list and the
// two input fields.
type Surface interface {
	// SetInputsValid marks both inputs valid (true) or invalid (false).
	SetInputsValid(valid bool)

	// ClearInputs empties both inputs after a successful save.
	ClearInputs()

	// RowsChanged reports that the whole row set was replaced.
	RowsChanged(rows int)
}

// Outcome is the result of a Submit call.
type Outcome int

const (
	// Rejected means an input was empty; nothing was written.
	Rejected Outcome = iota
	// Saved means the record was inserted.
	Saved
	// Failed means the inputs were valid but the store refused the write.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Saved:
		return "saved"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Controller holds the list snapshot and the injected store.
type Controller struct {
	store   Store
	surface Surface
	logger  *slog.Logger
	movies  []movie.Movie
	lastID  int64 // id of the last successful insert, 0 before any
}

// New creates a controller with an empty snapshot. Call Reload to populate it.
// A nil surface or logger is replaced by a no-op implementation.
func New(st Store, surface Surface, logger *slog.Logger) *Controller {
	if surface == nil {
		surface = NopSurface{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:   st,
		surface: surface,
		logger:  logger,
		movies:  []movie.Movie{},
	}
}

// Submit validates the raw inputs and saves a new record.
//
// Both inputs are trimmed; if either is then empty the surface is told the
// inputs are invalid and Rejected is returned without touching the store.
// The location keeps only digits and '.', and its leading integer is stored
// (0 when there is none). On a successful insert the inputs are cleared and
// the list reloaded. A store failure returns Failed with the error and the
// inputs are kept.
func (c *Controller) Submit(ctx context.Context, rawName, rawLocation string) (Outcome, error) {
	name := movie.TrimName(rawName)
	rawLocation = strings.TrimSpace(rawLocation)

	if name == "" || rawLocation == "" {
		c.surface.SetInputsValid(false)
		c.logger.Debug("submit rejected", "name_empty", name == "", "location_empty", rawLocation == "")
		return Rejected, nil
	}
	c.surface.SetInputsValid(true)

	location := movie.ParseLocation(rawLocation)
	id, err := c.store.Insert(ctx, name, location)
	if err != nil {
		c.logger.Error("failed to save movie", "name", name, "location", location, "error", err)
		return Failed, err
	}

	c.logger.Info("movie saved", "id", id, "name", name, "location", location)
	c.lastID = id
	c.surface.ClearInputs()

	if err := c.Reload(ctx); err != nil {
		return Saved, err
	}
	return Saved, nil
}

// Reload replaces the snapshot with a full read of the store and notifies
// the surface. On failure the previous snapshot is kept.
func (c *Controller) Reload(ctx context.Context) error {
	movies, err := c.store.SelectAll(ctx)
	if err != nil {
		c.logger.Error("failed to reload movies", "error", err)
		return err
	}

	c.movies = movies
	c.logger.Debug("movies reloaded", "rows", len(movies))
	c.surface.RowsChanged(len(movies))
	return nil
}

// RemoveAt deletes the record at the zero-based list position and reloads.
//
// The reload happens whether or not the delete succeeded, so the surface
// always shows the store's state. Unlike a silent refresh, a failed delete is
// returned (joined with any reload error) so the caller can report it.
// Position must be in [0, RowCount()); anything else panics.
func (c *Controller) RemoveAt(ctx context.Context, position int) error {
	m := c.RowAt(position)

	delErr := c.store.DeleteByID(ctx, m.ID)
	if delErr != nil {
		c.logger.Error("failed to delete movie", "id", m.ID, "position", position, "error", delErr)
	} else {
		c.logger.Info("movie deleted", "id", m.ID, "name", m.Name)
	}

	return errors.Join(delErr, c.Reload(ctx))
}

// RowCount returns the size of the snapshot.
func (c *Controller) RowCount() int {
	return len(c.movies)
}

// RowAt returns the record at the zero-based position.
// Out-of-range positions are a programming error and panic.
func (c *Controller) RowAt(position int) movie.Movie {
	if position < 0 || position >= len(c.movies) {
		panic(fmt.Sprintf("controller: row %d out of range [0, %d)", position, len(c.movies)))
	}
	return c.movies[position]
}

// LastSaved returns the record written by the most recent successful Submit,
// looked up by id in the current snapshot. ok is false when nothing has been
// saved or the record is no longer listed.
func (c *Controller) LastSaved() (movie.Movie, bool) {
	if c.lastID == 0 {
		return movie.Movie{}, false
	}
	for _, m := range c.movies {
		if m.ID == c.lastID {
			return m, true
		}
	}
	return movie.Movie{}, false
}

// Rows returns a copy of the snapshot.
func (c *Controller) Rows() []movie.Movie {
	out := make([]movie.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// NopSurface ignores every signal.
type NopSurface struct{}

func (NopSurface) SetInputsValid(bool) {}
func (NopSurface) ClearInputs()        {}
func (NopSurface) RowsChanged(int)     {}
