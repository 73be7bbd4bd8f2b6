package dataset

import (
	"fmt"
	"io"

	"github.com/roach88/facultymetrics/internal/export"
	"github.com/roach88/facultymetrics/internal/roster"
)

// ParseCSV reads a roster from an export CSV. The derived total columns
// must agree with the counts they are computed from; a file edited by hand
// with inconsistent totals is rejected.
func ParseCSV(r io.Reader) ([]roster.Row, error) {
	flat, err := export.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	rows := make([]roster.Row, len(flat))
	for i, f := range flat {
		rows[i] = f.Source()
		rec := roster.NewRecord(rows[i])
		if rec.TotalPublications() != f.TotalPublications {
			return nil, &RowError{Index: i, Seq: f.Seq, Field: "Total_Publications",
				Message: fmt.Sprintf("is %d, counts sum to %d", f.TotalPublications, rec.TotalPublications())}
		}
		if rec.TotalProjects() != f.TotalProjects {
			return nil, &RowError{Index: i, Seq: f.Seq, Field: "Total_Research_Projects",
				Message: fmt.Sprintf("is %d, counts sum to %d", f.TotalProjects, rec.TotalProjects())}
		}
	}
	if err := Validate(rows); err != nil {
		return nil, fmt.Errorf("validate csv roster: %w", err)
	}
	return rows, nil
}
