package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

// Rows returns every stored row in import order.
// Returns an empty slice (not nil) for an empty roster.
func (s *Store) Rows(ctx context.Context) ([]roster.Row, error) {
	return s.query(ctx, nil)
}

// Query returns the stored rows matching c, in import order.
// It selects the same rows filter.Apply would over Rows.
func (s *Store) Query(ctx context.Context, c filter.Criteria) ([]roster.Row, error) {
	return s.query(ctx, c.Predicate())
}

func (s *Store) query(ctx context.Context, p filter.Predicate) ([]roster.Row, error) {
	query, params, err := s.compiler.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("compile roster query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	out := []roster.Row{}
	for rows.Next() {
		var r roster.Row
		err := rows.Scan(
			&r.Seq,
			&r.Name,
			&r.Rank,
			&r.Domain,
			&r.JournalPublications,
			&r.ConferencePublications,
			&r.BookChapters,
			&r.ProjectsCompleted,
			&r.ProjectsOngoing,
		)
		if err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}
	return out, nil
}

// Label returns the label recorded by the last import, or "" if the
// database has never been imported into.
func (s *Store) Label(ctx context.Context) (string, error) {
	var label string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaLabel).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read label: %w", err)
	}
	return label, nil
}
