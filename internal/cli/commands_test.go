package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/export"
)

func TestKPIs_TextGolden(t *testing.T) {
	stdout, _, err := execute(t, "kpis")
	require.NoError(t, err)
	assertGolden(t, "kpis_text", stdout)
}

func TestKPIs_JSONGolden(t *testing.T) {
	stdout, _, err := execute(t, "kpis", "--domain", "ML", "--format", "json")
	require.NoError(t, err)
	assertGolden(t, "kpis_ml_json", stdout)
}

func TestKPIs_EmptyViewReportsZero(t *testing.T) {
	stdout, _, err := execute(t, "kpis", "--rank", "Emeritus Professor")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Roster: ece (0 of 27 faculty)")
	assert.Contains(t, stdout, "Faculty:                 0\n")
	assert.Contains(t, stdout, "Mean Publications:       0.00\n")
}

func TestTop_TextGolden(t *testing.T) {
	stdout, _, err := execute(t, "top", "--limit", "5")
	require.NoError(t, err)
	assertGolden(t, "top_5_text", stdout)
}

func TestTop_JSON(t *testing.T) {
	stdout, _, err := execute(t, "top", "--limit", "1", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Name              string `json:"name"`
			TotalPublications int    `json:"total_publications"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Dr Binod Kumar Kanaujia", resp.Data[0].Name)
	assert.Equal(t, 465, resp.Data[0].TotalPublications)
}

func TestTop_NegativeLimit(t *testing.T) {
	stdout, _, err := execute(t, "top", "--limit", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E002]: limit must be non-negative, got -1")
}

func TestDomains_TextGolden(t *testing.T) {
	stdout, _, err := execute(t, "domains")
	require.NoError(t, err)
	assertGolden(t, "domains_text", stdout)
}

func TestDomains_Stats(t *testing.T) {
	stdout, _, err := execute(t, "domains", "--stats", "--domain", "ML")
	require.NoError(t, err)
	assert.Contains(t, stdout, "=== Publications by Domain and Type ===")
	assert.Contains(t, stdout, "  ML                                     233        151    57   441\n")
}

func TestPubTypes_TextGolden(t *testing.T) {
	stdout, _, err := execute(t, "pubtypes")
	require.NoError(t, err)
	assertGolden(t, "pubtypes_text", stdout)
}

func TestList_FilterFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{name: "ml domain", args: []string{"--domain", "ML"}, want: []int{4, 5, 8, 9, 12}},
		{name: "name folds case", args: []string{"--name", "KHOSLA"}, want: []int{2, 4}},
		{name: "min journal", args: []string{"--min-journal", "100"}, want: []int{1, 7}},
		{name: "rank with comma", args: []string{"--rank", "Director, NITJ"}, want: []int{1}},
		{name: "two ranks", args: []string{"--rank", "Director, NITJ", "--rank", "Associate Professor & Head"}, want: []int{1, 5}},
		{name: "empty rank selects none", args: []string{"--rank="}, want: []int{}},
		{name: "empty domain selects none", args: []string{"--domain="}, want: []int{}},
		{name: "conjunction", args: []string{"--domain", "Signal processing", "--min-total", "100"}, want: []int{3, 6, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--format", "json"}, tt.args...)
			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, listSeqs(t, stdout))
		})
	}
}

func TestList_Text(t *testing.T) {
	stdout, _, err := execute(t, "list", "--name", "kanaujia")
	require.NoError(t, err)
	assert.Equal(t, "Roster: ece (1 of 27 faculty)\n\n"+
		"=== Faculty ===\n"+
		"  [1] Dr Binod Kumar Kanaujia\n"+
		"       Director, NITJ, Communication Systems\n"+
		"       Publications: 465 (journal 347, conference 93, book chapters 25)\n"+
		"       Projects: 11 (completed 8, ongoing 3)\n", stdout)
}

func TestList_NegativeThreshold(t *testing.T) {
	stdout, _, err := execute(t, "list", "--min-total", "-5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "E002")
}

func TestProjects(t *testing.T) {
	stdout, _, err := execute(t, "projects", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "=== Research Projects by Faculty (top 2) ===\n")
	assert.Contains(t, stdout, "  Ramesh K Sunkaria            completed 14  ongoing  4  total 18\n")
	assert.Contains(t, stdout, "  Arun K Khosla                completed 11  ongoing  2  total 13\n")
}

func TestRanks(t *testing.T) {
	stdout, _, err := execute(t, "ranks", "--domain", "ML", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data []struct {
			Rank  string `json:"rank"`
			Count int    `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "Associate Professor", resp.Data[0].Rank)
	assert.Equal(t, 2, resp.Data[0].Count)
}

func TestRanks_Stats(t *testing.T) {
	stdout, _, err := execute(t, "ranks", "--stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "=== Research Projects by Rank ===")
}

func TestCrossTab(t *testing.T) {
	stdout, _, err := execute(t, "crosstab", "--domain", "ML")
	require.NoError(t, err)
	assert.Contains(t, stdout, "=== Faculty by Domain and Rank ===\n")
	assert.Contains(t, stdout, "  ML                                 Associate Professor                  2\n")
}

func TestCrossTab_Dense(t *testing.T) {
	stdout, _, err := execute(t, "crosstab", "--dense", "--domain", "ML", "--domain", "iot", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Domains []string `json:"domains"`
			Ranks   []string `json:"ranks"`
			Counts  [][]int  `json:"counts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []string{"ML", "iot"}, resp.Data.Domains)
	require.Len(t, resp.Data.Counts, 2)
	for _, row := range resp.Data.Counts {
		assert.Len(t, row, len(resp.Data.Ranks))
	}
}

func TestReport(t *testing.T) {
	stdout, _, err := execute(t, "report", "--top", "3", "--projects", "3")
	require.NoError(t, err)
	for _, section := range []string{
		"=== KPIs ===",
		"=== Top 3 by Total Publications ===",
		"=== Publications by Domain ===",
		"=== Research Projects by Faculty (top 3) ===",
		"=== Faculty by Rank ===",
		"=== Publications by Type ===",
		"=== Faculty by Domain and Rank ===",
	} {
		assert.Contains(t, stdout, section)
	}
}

func TestReport_JSON(t *testing.T) {
	stdout, _, err := execute(t, "report", "--domain", "ML", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			RosterSize int `json:"roster_size"`
			KPIs       struct {
				TotalPublications int `json:"total_publications"`
			} `json:"kpis"`
			Criteria struct {
				Domains []string `json:"domains"`
			} `json:"criteria"`
		} `json:"data"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 27, resp.Data.RosterSize)
	assert.Equal(t, 441, resp.Data.KPIs.TotalPublications)
	assert.Equal(t, []string{"ML"}, resp.Data.Criteria.Domains)
	assert.Equal(t, "test-trace-default", resp.TraceID)
}

func TestExport_FilteredView(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "export", "--domain", "ML", "--dir", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "ece_research_data_20261019.csv")
	assert.Equal(t, "✓ Exported 5 row(s) to "+path+"\n", stdout)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "export", "testdata", "golden", "ml_export.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestExport_CompleteIgnoresFilters(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "export", "--complete", "--domain", "ML", "--dir", dir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "ece_complete_data_20261019.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := export.ReadCSV(f)
	require.NoError(t, err)
	assert.Len(t, rows, 27)
	assert.Equal(t, 1, rows[0].Seq)
}

func TestExport_CustomLabelJSON(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "export", "--label", "snapshot", "--dir", dir, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, filepath.Join(dir, "snapshot_20261019.csv"), resp.Data.Path)
	assert.Equal(t, 27, resp.Data.Rows)
	assert.FileExists(t, resp.Data.Path)
}

func TestExport_MissingDir(t *testing.T) {
	stdout, _, err := execute(t, "export", "--dir", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E005]: output directory not found")
}

func TestExport_YAMLDatasetReloads(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "export", "--domain", "ML", "--yaml", "--dir", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "ece_research_data_20261019.yaml")
	assert.Equal(t, "✓ Exported 5 row(s) to "+path+"\n", stdout)

	rows, err := dataset.LoadFile(path)
	require.NoError(t, err)
	seqs := make([]int, len(rows))
	for i, r := range rows {
		seqs[i] = r.Seq
	}
	assert.Equal(t, []int{4, 5, 8, 9, 12}, seqs)

	stdout, _, err = execute(t, "--data", path, "kpis", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Data struct {
			TotalPublications int `json:"total_publications"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 441, resp.Data.TotalPublications)
}

func listSeqs(t *testing.T, stdout string) []int {
	t.Helper()
	var resp struct {
		Status string     `json:"status"`
		Data   ListResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Equal(t, "ok", resp.Status)
	out := make([]int, len(resp.Data.Records))
	for i, r := range resp.Data.Records {
		out[i] = r.Seq
	}
	return out
}
