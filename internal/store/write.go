package store

import (
	"context"
	"fmt"
)

// Insert appends one row and returns the id the database assigned to it.
// The name and location are stored as given; emptiness is not checked here.
func (s *Store) Insert(ctx context.Context, name string, location int) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bluRays (name, binder)
		VALUES (?, ?)
	`, name, location)
	if err != nil {
		return 0, fmt.Errorf("%w: insert movie: %w", ErrWrite, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: insert movie: last insert id: %w", ErrWrite, err)
	}

	return id, nil
}

// DeleteByID removes the row with the given id.
// Deleting an id that does not exist is a successful no-op.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM bluRays WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("%w: delete movie %d: %w", ErrWrite, id, err)
	}
	return nil
}
