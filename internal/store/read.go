package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/shelf/internal/movie"
)

// SelectAll returns every row in the engine's natural iteration order
// (rowid, i.e. insertion order). No ORDER BY is applied.
//
// Returns an empty slice (not nil) when the table has no rows.
func (s *Store) SelectAll(ctx context.Context) ([]movie.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, binder FROM bluRays
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query movies: %w", ErrRead, err)
	}
	defer rows.Close()

	movies := []movie.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate movies: %w", ErrRead, err)
	}

	return movies, nil
}

// Count returns the number of rows in the table.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bluRays").Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count movies: %w", ErrRead, err)
	}
	return n, nil
}

// scanMovie reads one row. NULL name and binder columns come back as zero values.
func scanMovie(rows *sql.Rows) (movie.Movie, error) {
	var (
		m        movie.Movie
		name     sql.NullString
		location sql.NullInt64
	)
	if err := rows.Scan(&m.ID, &name, &location); err != nil {
		return movie.Movie{}, fmt.Errorf("%w: scan movie: %w", ErrRead, err)
	}
	m.Name = name.String
	m.Location = int(location.Int64)
	return m, nil
}
