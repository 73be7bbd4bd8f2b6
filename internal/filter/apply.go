package filter

import (
	"strings"

	"github.com/roach88/facultymetrics/internal/roster"
)

// Apply returns the records that satisfy every constraint in c, in input
// order. The input slice is not modified. The result is never nil.
func Apply(records []roster.FacultyRecord, c Criteria) []roster.FacultyRecord {
	m := Compile(c.Predicate())
	out := make([]roster.FacultyRecord, 0, len(records))
	for _, r := range records {
		if m(r) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether a single record satisfies p.
func Match(p Predicate, r roster.FacultyRecord) bool {
	return Compile(p)(r)
}

// Matcher is a compiled predicate.
type Matcher func(roster.FacultyRecord) bool

// Compile turns a predicate tree into a Matcher. Lookup sets and the folded
// name substring are built once here rather than per record.
// A nil predicate matches everything.
func Compile(p Predicate) Matcher {
	switch pred := Deref(p).(type) {
	case nil:
		return func(roster.FacultyRecord) bool { return true }
	case NameContains:
		if pred.Substring == "" {
			return func(roster.FacultyRecord) bool { return true }
		}
		needle := Fold(pred.Substring)
		return func(r roster.FacultyRecord) bool {
			return r.Name != "" && strings.Contains(Fold(r.Name), needle)
		}
	case RankIn:
		set := toSet(pred.Values)
		return func(r roster.FacultyRecord) bool { return set[r.Rank] }
	case DomainIn:
		set := toSet(pred.Values)
		return func(r roster.FacultyRecord) bool { return set[r.Domain] }
	case MinTotalPublications:
		return func(r roster.FacultyRecord) bool { return r.TotalPublications() >= pred.Min }
	case MinJournalPublications:
		return func(r roster.FacultyRecord) bool { return r.JournalPublications >= pred.Min }
	case And:
		matchers := make([]Matcher, len(pred.Predicates))
		for i, sub := range pred.Predicates {
			matchers[i] = Compile(sub)
		}
		return func(r roster.FacultyRecord) bool {
			for _, m := range matchers {
				if !m(r) {
					return false
				}
			}
			return true
		}
	default:
		// Unreachable: Predicate is sealed.
		return func(roster.FacultyRecord) bool { return false }
	}
}

// toSet builds an exact-match lookup set. Membership is case-sensitive:
// rank and domain labels are compared verbatim.
func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// Deref returns the value form of a predicate passed by pointer, so
// evaluators only need to switch over value types. A nil pointer yields nil.
func Deref(p Predicate) Predicate {
	switch q := p.(type) {
	case *NameContains:
		if q == nil {
			return nil
		}
		return *q
	case *RankIn:
		if q == nil {
			return nil
		}
		return *q
	case *DomainIn:
		if q == nil {
			return nil
		}
		return *q
	case *MinTotalPublications:
		if q == nil {
			return nil
		}
		return *q
	case *MinJournalPublications:
		if q == nil {
			return nil
		}
		return *q
	case *And:
		if q == nil {
			return nil
		}
		return *q
	default:
		return p
	}
}
