package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioDir = "testdata/scenarios"

func num(v float64) *float64 { return &v }

func strs(v ...string) *[]string { return &v }

func TestRun_AllScenarioFilesPass(t *testing.T) {
	scenarios, err := LoadDir(scenarioDir)
	require.NoError(t, err)
	require.Len(t, scenarios, 7)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"ml_domain", "no_matching_rank"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join(scenarioDir, name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass)
		})
	}
}

func TestRun_FailingAssertionsAreReported(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_expectations",
		Description: "Expectations that do not hold",
		Filter:      ScenarioFilter{Domains: strs("ML")},
		Assertions: []Assertion{
			{Type: AssertCount, Value: num(4)},
			{Type: AssertSeqs, Seqs: []int{4, 5}},
			{Type: AssertTop, Name: "Dr Binod Kumar Kanaujia"},
			{Type: AssertEmpty},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "Assertion failed: count")
	assert.Contains(t, result.Errors[0], "Expected: 4 records")
	assert.Contains(t, result.Errors[0], "Actual: 5 records")
	assert.Contains(t, result.Errors[1], "seqs [4 5 8 9 12]")
	assert.Contains(t, result.Errors[2], `top "Dr Ashish Raman"`)
	assert.Contains(t, result.Errors[3], "Matched: [4 5 8 9 12]")
}

func TestRun_EmptyRankListMatchesNothing(t *testing.T) {
	scenario := &Scenario{
		Name:        "deselect_all_ranks",
		Description: "An explicit empty rank list",
		Filter:      ScenarioFilter{Ranks: strs()},
		Assertions:  []Assertion{{Type: AssertEmpty}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Matched)
}

func TestRun_TopOnEmptyViewFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "top_of_nothing",
		Description: "Top of an empty view",
		Filter:      ScenarioFilter{MinTotal: 10000},
		Assertions:  []Assertion{{Type: AssertTop, Name: "anyone"}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "empty view")
}

func TestRun_MissingDataset(t *testing.T) {
	scenario := &Scenario{
		Name:        "missing",
		Description: "Dataset does not exist",
		Dataset:     filepath.Join(t.TempDir(), "absent.yaml"),
		Assertions:  []Assertion{{Type: AssertEmpty}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestRun_KPIAssertion(t *testing.T) {
	scenario := &Scenario{
		Name:        "kpis",
		Description: "Mean publications of the ML domain",
		Filter:      ScenarioFilter{Domains: strs("ML")},
		Assertions: []Assertion{
			{Type: AssertKPI, Field: "mean_publications", Value: num(88.2)},
			{Type: AssertKPI, Field: "total_projects", Value: num(31)},
			{Type: AssertKPI, Field: "faculty", Value: num(6)},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "faculty = 6")
	assert.Contains(t, result.Errors[0], "faculty = 5")
}

func TestRun_OutOfSequenceRosterKeepsListedOrder(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join(scenarioDir, "shuffled_roster.yaml"))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, []int{3, 2, 1}, result.Matched)
}

func TestScenarioFilter_OmittedListsDefaultToUniverse(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join(scenarioDir, "top_publisher.yaml"))
	require.NoError(t, err)
	assert.Nil(t, scenario.Filter.Ranks)
	assert.Nil(t, scenario.Filter.Domains)

	empty, err := loadFromString(t, `
name: empty_ranks
description: "explicit empty list"
filter:
  ranks: []
assertions:
  - type: empty
`)
	require.NoError(t, err)
	require.NotNil(t, empty.Filter.Ranks)
	assert.Empty(t, *empty.Filter.Ranks)
}

func TestLoadScenario_ResolvesDatasetRelativeToFile(t *testing.T) {
	s, err := LoadScenario(filepath.Join(scenarioDir, "small_roster.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(scenarioDir, "..", "rosters", "small.yaml"), s.Dataset)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: a\ndescription: b\nfilters: {}\nassertions: [{type: empty}]\n",
			wantErr: "field filters not found",
		},
		{
			name:    "missing name",
			yaml:    "description: b\nassertions: [{type: empty}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: a\nassertions: [{type: empty}]\n",
			wantErr: "description is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: a\ndescription: b\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "negative threshold",
			yaml:    "name: a\ndescription: b\nfilter: {min_total: -1}\nassertions: [{type: empty}]\n",
			wantErr: "thresholds must be non-negative",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: a\ndescription: b\nassertions: [{type: trace_order}]\n",
			wantErr: `unknown assertion type "trace_order"`,
		},
		{
			name:    "count without value",
			yaml:    "name: a\ndescription: b\nassertions: [{type: count}]\n",
			wantErr: "count requires value",
		},
		{
			name:    "unknown kpi",
			yaml:    "name: a\ndescription: b\nassertions: [{type: kpi, field: median, value: 1}]\n",
			wantErr: `unknown kpi field "median"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFromString(t, tt.yaml)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}

func TestLoadDir_SortedByFileName(t *testing.T) {
	scenarios, err := LoadDir(scenarioDir)
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"min_journal",
		"min_journal_100",
		"ml_domain",
		"no_matching_rank",
		"shuffled_roster",
		"small_roster",
		"top_publisher",
	}, names)
}

func loadFromString(t *testing.T, content string) (*Scenario, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return LoadScenario(path)
}
