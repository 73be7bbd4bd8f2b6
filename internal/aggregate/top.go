package aggregate

import (
	"sort"

	"github.com/roach88/facultymetrics/internal/roster"
)

// TopByTotalPublications returns the n records with the most publications,
// largest first. Ties keep input order. n larger than the view returns the
// whole view sorted; n <= 0 returns an empty slice.
func TopByTotalPublications(records []roster.FacultyRecord, n int) []roster.FacultyRecord {
	if n <= 0 {
		return []roster.FacultyRecord{}
	}
	sorted := SortByTotalPublications(records)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByTotalPublications returns a copy of records ordered by
// TotalPublications descending, ties in input order.
func SortByTotalPublications(records []roster.FacultyRecord) []roster.FacultyRecord {
	sorted := make([]roster.FacultyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPublications() > sorted[j].TotalPublications()
	})
	return sorted
}
