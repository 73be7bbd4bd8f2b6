package harness

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
	"github.com/roach88/facultymetrics/internal/store"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when the SQL and in-memory views agree and every
	// assertion holds.
	Pass bool `json:"pass"`

	// Matched lists the sequence numbers in the filtered view, in roster order.
	Matched []int `json:"matched"`

	// KPIs summarises the filtered view.
	KPIs aggregate.KPIs `json:"kpis"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Matched: []int{},
		Errors:  []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Execution flow:
// 1. Load the dataset (built-in roster when none is named)
// 2. Import it into a fresh in-memory store
// 3. Filter in memory and through SQL, and compare the two views
// 4. Evaluate assertions against the view
//
// An error is returned only when the scenario cannot be executed; failed
// expectations are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	ctx := context.Background()

	rows, label, err := loadRows(scenario)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	if err := st.ReplaceRoster(ctx, label, rows); err != nil {
		return nil, fmt.Errorf("failed to import dataset: %w", err)
	}

	snapshot := roster.New(rows)
	criteria := scenario.Filter.Criteria(snapshot)
	view := filter.Apply(snapshot.All(), criteria)

	queried, err := st.Query(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to query store: %w", err)
	}

	result := NewResult()
	result.Matched = seqs(view)
	result.KPIs = aggregate.ComputeKPIs(view)

	if sqlSeqs := rowSeqs(queried); !slices.Equal(sqlSeqs, result.Matched) {
		result.AddError(fmt.Sprintf("store query selected %v, in-memory filter selected %v",
			sqlSeqs, result.Matched))
	}

	for _, msg := range EvaluateAssertions(view, scenario.Assertions) {
		result.AddError(msg)
	}

	slog.Debug("scenario executed",
		"scenario", scenario.Name,
		"matched", len(view),
		"pass", result.Pass,
	)

	return result, nil
}

func loadRows(scenario *Scenario) ([]roster.Row, string, error) {
	if scenario.Dataset == "" {
		return dataset.Builtin(), dataset.BuiltinLabel, nil
	}
	rows, err := dataset.LoadFile(scenario.Dataset)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load dataset: %w", err)
	}
	return rows, dataset.Label(scenario.Dataset), nil
}

func rowSeqs(rows []roster.Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Seq
	}
	return out
}
