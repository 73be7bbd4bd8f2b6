package filter

import "github.com/roach88/facultymetrics/internal/roster"

// Criteria is an immutable bundle of filter constraints. Methods return
// modified copies and never alter the receiver.
//
// The zero Criteria matches no record because its rank and domain sets are
// empty. Start from DefaultCriteria for the "everything selected" state.
type Criteria struct {
	NameContains           string   `json:"name_contains,omitempty"`
	Ranks                  []string `json:"ranks"`
	Domains                []string `json:"domains"`
	MinTotalPublications   int      `json:"min_total_publications"`
	MinJournalPublications int      `json:"min_journal_publications"`
}

// DefaultCriteria selects every record in s: all ranks, all domains, no name
// constraint and zero thresholds. It is the reset state of a dashboard.
func DefaultCriteria(s *roster.Store) Criteria {
	return Criteria{
		Ranks:   s.Ranks(),
		Domains: s.Domains(),
	}
}

// WithName returns a copy with the name substring set.
func (c Criteria) WithName(substring string) Criteria {
	c.NameContains = substring
	return c
}

// WithRanks returns a copy accepting exactly the given ranks.
func (c Criteria) WithRanks(ranks ...string) Criteria {
	c.Ranks = clone(ranks)
	return c
}

// WithDomains returns a copy accepting exactly the given domains.
func (c Criteria) WithDomains(domains ...string) Criteria {
	c.Domains = clone(domains)
	return c
}

// WithMinTotal returns a copy with the minimum total publications set.
func (c Criteria) WithMinTotal(n int) Criteria {
	c.MinTotalPublications = n
	return c
}

// WithMinJournal returns a copy with the minimum journal publications set.
func (c Criteria) WithMinJournal(n int) Criteria {
	c.MinJournalPublications = n
	return c
}

// Predicate lowers the criteria to a predicate tree. The name predicate is
// only present when a substring is set; the other four are always present.
func (c Criteria) Predicate() Predicate {
	preds := make([]Predicate, 0, 5)
	if c.NameContains != "" {
		preds = append(preds, NameContains{Substring: c.NameContains})
	}
	preds = append(preds,
		RankIn{Values: clone(c.Ranks)},
		DomainIn{Values: clone(c.Domains)},
		MinTotalPublications{Min: c.MinTotalPublications},
		MinJournalPublications{Min: c.MinJournalPublications},
	)
	return And{Predicates: preds}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
