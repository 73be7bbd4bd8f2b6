package roster

import "sort"

// Store is the immutable, ordered roster.
type Store struct {
	records []FacultyRecord
	bySeq   map[int]int
}

// Bounds are the largest publication counts present in a roster. Front ends
// use them as the upper end of threshold ranges.
type Bounds struct {
	MaxTotalPublications   int `json:"max_total_publications"`
	MaxJournalPublications int `json:"max_journal_publications"`
}

// New builds a Store from rows in the given order.
//
// Rows are trusted: dataset sources validate them before they reach the
// store. A repeated sequence number keeps its first row for BySequence
// lookups; All still returns every row.
func New(rows []Row) *Store {
	s := &Store{
		records: make([]FacultyRecord, len(rows)),
		bySeq:   make(map[int]int, len(rows)),
	}
	for i, row := range rows {
		s.records[i] = NewRecord(row)
		if _, exists := s.bySeq[row.Seq]; !exists {
			s.bySeq[row.Seq] = i
		}
	}
	return s
}

// All returns every record in input order.
// The returned slice is a copy; callers own it.
func (s *Store) All() []FacultyRecord {
	out := make([]FacultyRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Rows returns the raw rows in input order.
func (s *Store) Rows() []Row {
	out := make([]Row, len(s.records))
	for i, r := range s.records {
		out[i] = r.Row
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// BySequence looks up a record by its sequence number.
func (s *Store) BySequence(seq int) (FacultyRecord, bool) {
	i, ok := s.bySeq[seq]
	if !ok {
		return FacultyRecord{}, false
	}
	return s.records[i], true
}

// Ranks returns the distinct rank labels, sorted.
func (s *Store) Ranks() []string {
	return distinct(s.records, func(r FacultyRecord) string { return r.Rank })
}

// Domains returns the distinct domain strings, sorted. Domains are compared
// verbatim, so labels differing only in case are listed separately.
func (s *Store) Domains() []string {
	return distinct(s.records, func(r FacultyRecord) string { return r.Domain })
}

// Bounds returns the largest total and journal publication counts.
// An empty store reports zero for both.
func (s *Store) Bounds() Bounds {
	var b Bounds
	for _, r := range s.records {
		if t := r.TotalPublications(); t > b.MaxTotalPublications {
			b.MaxTotalPublications = t
		}
		if r.JournalPublications > b.MaxJournalPublications {
			b.MaxJournalPublications = r.JournalPublications
		}
	}
	return b
}

func distinct(records []FacultyRecord, key func(FacultyRecord) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
