package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

// Scenario describes one filtered view of a roster and what it must contain.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dataset is a roster file to load instead of the built-in roster.
	// Relative paths are resolved against the scenario file location.
	Dataset string `yaml:"dataset,omitempty"`

	// Filter holds the criteria applied to the roster.
	Filter ScenarioFilter `yaml:"filter"`

	// Assertions validate the filtered view.
	Assertions []Assertion `yaml:"assertions"`
}

// ScenarioFilter is the YAML form of filter.Criteria.
//
// Ranks and Domains are pointers so an omitted key ("every value present in
// the roster") can be told apart from an explicit empty list ("no value").
type ScenarioFilter struct {
	Name       string    `yaml:"name,omitempty"`
	Ranks      *[]string `yaml:"ranks,omitempty"`
	Domains    *[]string `yaml:"domains,omitempty"`
	MinTotal   int       `yaml:"min_total,omitempty"`
	MinJournal int       `yaml:"min_journal,omitempty"`
}

// Criteria resolves f against s. Omitted rank and domain lists
// default to the roster's universes.
func (f ScenarioFilter) Criteria(s *roster.Store) filter.Criteria {
	c := filter.DefaultCriteria(s).
		WithName(f.Name).
		WithMinTotal(f.MinTotal).
		WithMinJournal(f.MinJournal)
	if f.Ranks != nil {
		c = c.WithRanks(*f.Ranks...)
	}
	if f.Domains != nil {
		c = c.WithDomains(*f.Domains...)
	}
	return c
}

// Assertion validates the filtered view.
type Assertion struct {
	// Type specifies the assertion type:
	// - "count": number of matching records equals Value
	// - "seqs": matching sequence numbers equal Seqs, in order
	// - "kpi": the KPI named by Field equals Value
	// - "top": the highest total publications record is Name, with Value if set
	// - "domain_total": total publications of Domain equals Value
	// - "empty": no record matches and every KPI is zero
	Type string `yaml:"type"`

	// Value is the expected number (count, kpi, top, domain_total).
	Value *float64 `yaml:"value,omitempty"`

	// Seqs are the expected sequence numbers (seqs).
	Seqs []int `yaml:"seqs,omitempty"`

	// Field is a KPI name such as total_publications (kpi).
	Field string `yaml:"field,omitempty"`

	// Name is the expected faculty name (top).
	Name string `yaml:"name,omitempty"`

	// Domain is the domain to total (domain_total).
	Domain string `yaml:"domain,omitempty"`
}

// Assertion type constants.
const (
	AssertCount       = "count"
	AssertSeqs        = "seqs"
	AssertKPI         = "kpi"
	AssertTop         = "top"
	AssertDomainTotal = "domain_total"
	AssertEmpty       = "empty"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Dataset != "" && !filepath.IsAbs(scenario.Dataset) {
		scenario.Dataset = filepath.Join(filepath.Dir(path), scenario.Dataset)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadDir loads every *.yaml and *.yml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Filter.MinTotal < 0 || s.Filter.MinJournal < 0 {
		return fmt.Errorf("filter thresholds must be non-negative")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}

	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertCount:
		if a.Value == nil {
			return fmt.Errorf("count requires value")
		}
	case AssertSeqs:
		if a.Seqs == nil {
			return fmt.Errorf("seqs requires seqs")
		}
	case AssertKPI:
		if a.Field == "" || a.Value == nil {
			return fmt.Errorf("kpi requires field and value")
		}
		if _, ok := kpiFields[a.Field]; !ok {
			return fmt.Errorf("unknown kpi field %q", a.Field)
		}
	case AssertTop:
		if a.Name == "" {
			return fmt.Errorf("top requires name")
		}
	case AssertDomainTotal:
		if a.Domain == "" || a.Value == nil {
			return fmt.Errorf("domain_total requires domain and value")
		}
	case AssertEmpty:
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
