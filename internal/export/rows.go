// Package export flattens a roster view into fixed-column rows for tabular
// serialization and names the files those rows are written to.
package export

import (
	"fmt"
	"strconv"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/roster"
)

// Columns is the fixed export header, in order.
var Columns = []string{
	"S_No",
	"Name",
	"Designation",
	"Domain",
	"Journal_Publications",
	"Conference_Publications",
	"Books_Chapters",
	"Total_Publications",
	"Research_Projects_Completed",
	"Research_Projects_Ongoing",
	"Total_Research_Projects",
}

// Row is one flat export row. Field order matches Columns.
type Row struct {
	Seq                    int    `json:"S_No"`
	Name                   string `json:"Name"`
	Rank                   string `json:"Designation"`
	Domain                 string `json:"Domain"`
	JournalPublications    int    `json:"Journal_Publications"`
	ConferencePublications int    `json:"Conference_Publications"`
	BookChapters           int    `json:"Books_Chapters"`
	TotalPublications      int    `json:"Total_Publications"`
	ProjectsCompleted      int    `json:"Research_Projects_Completed"`
	ProjectsOngoing        int    `json:"Research_Projects_Ongoing"`
	TotalProjects          int    `json:"Total_Research_Projects"`
}

// Rows flattens records, ordered by total publications descending with ties
// in input order.
func Rows(records []roster.FacultyRecord) []Row {
	sorted := aggregate.SortByTotalPublications(records)
	out := make([]Row, len(sorted))
	for i, r := range sorted {
		out[i] = FromRecord(r)
	}
	return out
}

// FromRecord flattens a single record.
func FromRecord(r roster.FacultyRecord) Row {
	return Row{
		Seq:                    r.Seq,
		Name:                   r.Name,
		Rank:                   r.Rank,
		Domain:                 r.Domain,
		JournalPublications:    r.JournalPublications,
		ConferencePublications: r.ConferencePublications,
		BookChapters:           r.BookChapters,
		TotalPublications:      r.TotalPublications(),
		ProjectsCompleted:      r.ProjectsCompleted,
		ProjectsOngoing:        r.ProjectsOngoing,
		TotalProjects:          r.TotalProjects(),
	}
}

// Source returns the raw roster row, dropping the derived columns.
func (r Row) Source() roster.Row {
	return roster.Row{
		Seq:                    r.Seq,
		Name:                   r.Name,
		Rank:                   r.Rank,
		Domain:                 r.Domain,
		JournalPublications:    r.JournalPublications,
		ConferencePublications: r.ConferencePublications,
		BookChapters:           r.BookChapters,
		ProjectsCompleted:      r.ProjectsCompleted,
		ProjectsOngoing:        r.ProjectsOngoing,
	}
}

// Strings renders the row as cells in Columns order.
func (r Row) Strings() []string {
	return []string{
		strconv.Itoa(r.Seq),
		r.Name,
		r.Rank,
		r.Domain,
		strconv.Itoa(r.JournalPublications),
		strconv.Itoa(r.ConferencePublications),
		strconv.Itoa(r.BookChapters),
		strconv.Itoa(r.TotalPublications),
		strconv.Itoa(r.ProjectsCompleted),
		strconv.Itoa(r.ProjectsOngoing),
		strconv.Itoa(r.TotalProjects),
	}
}

// ParseRow reads cells in Columns order back into a Row.
func ParseRow(cells []string) (Row, error) {
	if len(cells) != len(Columns) {
		return Row{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(cells))
	}
	ints := make([]int, len(cells))
	for i, cell := range cells {
		if i >= 1 && i <= 3 {
			continue
		}
		n, err := strconv.Atoi(cell)
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %w", Columns[i], err)
		}
		ints[i] = n
	}
	return Row{
		Seq:                    ints[0],
		Name:                   cells[1],
		Rank:                   cells[2],
		Domain:                 cells[3],
		JournalPublications:    ints[4],
		ConferencePublications: ints[5],
		BookChapters:           ints[6],
		TotalPublications:      ints[7],
		ProjectsCompleted:      ints[8],
		ProjectsOngoing:        ints[9],
		TotalProjects:          ints[10],
	}, nil
}
