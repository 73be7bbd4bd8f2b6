package harness

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/roster"
)

// tolerance absorbs float rounding when comparing mean publications.
const tolerance = 1e-9

// kpiFields maps assertion field names to KPI values.
var kpiFields = map[string]func(aggregate.KPIs) float64{
	"faculty":                 func(k aggregate.KPIs) float64 { return float64(k.Faculty) },
	"journal_publications":    func(k aggregate.KPIs) float64 { return float64(k.JournalPublications) },
	"conference_publications": func(k aggregate.KPIs) float64 { return float64(k.ConferencePublications) },
	"book_chapters":           func(k aggregate.KPIs) float64 { return float64(k.BookChapters) },
	"total_publications":      func(k aggregate.KPIs) float64 { return float64(k.TotalPublications) },
	"projects_completed":      func(k aggregate.KPIs) float64 { return float64(k.ProjectsCompleted) },
	"projects_ongoing":        func(k aggregate.KPIs) float64 { return float64(k.ProjectsOngoing) },
	"total_projects":          func(k aggregate.KPIs) float64 { return float64(k.TotalProjects) },
	"mean_publications":       func(k aggregate.KPIs) float64 { return k.MeanPublications },
	"distinct_domains":        func(k aggregate.KPIs) float64 { return float64(k.DistinctDomains) },
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Matched  []int  // Sequence numbers in the view, for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "  Matched: %v", e.Matched)
	return buf.String()
}

// EvaluateAssertions checks every assertion against view and returns the
// failure messages in assertion order.
func EvaluateAssertions(view []roster.FacultyRecord, assertions []Assertion) []string {
	var failures []string
	for _, a := range assertions {
		if err := evaluate(view, a); err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

func evaluate(view []roster.FacultyRecord, a Assertion) error {
	switch a.Type {
	case AssertCount:
		return assertCount(view, a)
	case AssertSeqs:
		return assertSeqs(view, a)
	case AssertKPI:
		return assertKPI(view, a)
	case AssertTop:
		return assertTop(view, a)
	case AssertDomainTotal:
		return assertDomainTotal(view, a)
	case AssertEmpty:
		return assertEmpty(view)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

func assertCount(view []roster.FacultyRecord, a Assertion) error {
	if !equalNumber(float64(len(view)), *a.Value) {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("%s records", formatNumber(*a.Value)),
			fmt.Sprintf("%d records", len(view)))
	}
	return nil
}

func assertSeqs(view []roster.FacultyRecord, a Assertion) error {
	got := seqs(view)
	if !slices.Equal(got, a.Seqs) {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("seqs %v", a.Seqs),
			fmt.Sprintf("seqs %v", got))
	}
	return nil
}

func assertKPI(view []roster.FacultyRecord, a Assertion) error {
	get, ok := kpiFields[a.Field]
	if !ok {
		return fmt.Errorf("unknown kpi field: %s", a.Field)
	}
	got := get(aggregate.ComputeKPIs(view))
	if !equalNumber(got, *a.Value) {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("%s = %s", a.Field, formatNumber(*a.Value)),
			fmt.Sprintf("%s = %s", a.Field, formatNumber(got)))
	}
	return nil
}

func assertTop(view []roster.FacultyRecord, a Assertion) error {
	top := aggregate.TopByTotalPublications(view, 1)
	if len(top) == 0 {
		return newAssertionError(a.Type, view, fmt.Sprintf("top %q", a.Name), "empty view")
	}
	r := top[0]
	if r.Name != a.Name {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("top %q", a.Name),
			fmt.Sprintf("top %q", r.Name))
	}
	if a.Value != nil && !equalNumber(float64(r.TotalPublications()), *a.Value) {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("%q with %s publications", a.Name, formatNumber(*a.Value)),
			fmt.Sprintf("%q with %d publications", r.Name, r.TotalPublications()))
	}
	return nil
}

func assertDomainTotal(view []roster.FacultyRecord, a Assertion) error {
	got := 0
	for _, d := range aggregate.SumByDomain(view) {
		if d.Domain == a.Domain {
			got = d.TotalPublications
			break
		}
	}
	if !equalNumber(float64(got), *a.Value) {
		return newAssertionError(a.Type, view,
			fmt.Sprintf("%s total %s", a.Domain, formatNumber(*a.Value)),
			fmt.Sprintf("%s total %d", a.Domain, got))
	}
	return nil
}

func assertEmpty(view []roster.FacultyRecord) error {
	if len(view) > 0 {
		return newAssertionError(AssertEmpty, view, "no records", fmt.Sprintf("%d records", len(view)))
	}
	if k := aggregate.ComputeKPIs(view); k != (aggregate.KPIs{}) {
		return newAssertionError(AssertEmpty, view, "zero KPIs", fmt.Sprintf("%+v", k))
	}
	return nil
}

func newAssertionError(typ string, view []roster.FacultyRecord, expected, actual string) *AssertionError {
	return &AssertionError{
		Type:     typ,
		Expected: expected,
		Actual:   actual,
		Matched:  seqs(view),
	}
}

func equalNumber(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}

func seqs(view []roster.FacultyRecord) []int {
	out := make([]int, len(view))
	for i, r := range view {
		out[i] = r.Seq
	}
	return out
}
