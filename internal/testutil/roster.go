package testutil

import "github.com/roach88/facultymetrics/internal/roster"

// Records wraps rows as FacultyRecords in order.
func Records(rows ...roster.Row) []roster.FacultyRecord {
	out := make([]roster.FacultyRecord, len(rows))
	for i, r := range rows {
		out[i] = roster.NewRecord(r)
	}
	return out
}

// Seqs lists the sequence numbers of records in order.
func Seqs(records []roster.FacultyRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Seq
	}
	return out
}
