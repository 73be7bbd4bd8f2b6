package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/facultymetrics/internal/filtersql"
	"github.com/roach88/facultymetrics/internal/roster"
)

const metaLabel = "label"

// ReplaceRoster swaps the stored roster for rows in one transaction and
// records the dataset label. Each row's index in rows is stored as its
// import position. Rows are expected to be validated by their
// dataset source; schema CHECK constraints reject anything that slips
// through and roll the whole import back.
func (s *Store) ReplaceRoster(ctx context.Context, label string, rows []roster.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace roster: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM faculty"); err != nil {
		return fmt.Errorf("replace roster: clear: %w", err)
	}

	columns := append(append([]string{}, filtersql.SourceColumns...), filtersql.OrderColumn)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		filtersql.Table, strings.Join(columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("replace roster: prepare: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.Seq,
			row.Name,
			row.Rank,
			row.Domain,
			row.JournalPublications,
			row.ConferencePublications,
			row.BookChapters,
			row.ProjectsCompleted,
			row.ProjectsOngoing,
			i,
		)
		if err != nil {
			return fmt.Errorf("replace roster: insert seq %d: %w", row.Seq, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, metaLabel, label)
	if err != nil {
		return fmt.Errorf("replace roster: label: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace roster: commit: %w", err)
	}

	slog.Info("roster imported", "label", label, "rows", len(rows))
	return nil
}
