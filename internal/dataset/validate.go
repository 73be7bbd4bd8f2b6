package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/facultymetrics/internal/roster"
)

// RowError reports a rejected row.
type RowError struct {
	Index   int    // zero-based position in the source
	Seq     int    // sequence number as read, possibly invalid
	Field   string // offending field
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (seq %d): %s: %s", e.Index+1, e.Seq, e.Field, e.Message)
}

// Validate checks every row and returns all problems joined, or nil.
func Validate(rows []roster.Row) error {
	var errs []error
	seen := make(map[int]int, len(rows))
	for i, row := range rows {
		reject := func(field, msg string) {
			errs = append(errs, &RowError{Index: i, Seq: row.Seq, Field: field, Message: msg})
		}

		if row.Seq <= 0 {
			reject("seq", "must be positive")
		} else if first, dup := seen[row.Seq]; dup {
			reject("seq", fmt.Sprintf("duplicates row %d", first+1))
		} else {
			seen[row.Seq] = i
		}

		if strings.TrimSpace(row.Name) == "" {
			reject("name", "must not be empty")
		}
		if strings.TrimSpace(row.Rank) == "" {
			reject("rank", "must not be empty")
		}
		if strings.TrimSpace(row.Domain) == "" {
			reject("domain", "must not be empty")
		}

		counts := []struct {
			field string
			value int
		}{
			{"journal_publications", row.JournalPublications},
			{"conference_publications", row.ConferencePublications},
			{"book_chapters", row.BookChapters},
			{"projects_completed", row.ProjectsCompleted},
			{"projects_ongoing", row.ProjectsOngoing},
		}
		for _, c := range counts {
			if c.value < 0 {
				reject(c.field, fmt.Sprintf("must not be negative, got %d", c.value))
			}
		}
	}
	return errors.Join(errs...)
}
