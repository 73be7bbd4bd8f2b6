package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/export"
	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
	"github.com/roach88/facultymetrics/internal/testutil"
)

func TestRows_SortedByTotalPublications(t *testing.T) {
	s := roster.New(dataset.Builtin())
	rows := export.Rows(s.All())
	require.Len(t, rows, 27)

	assert.Equal(t, 1, rows[0].Seq)
	assert.Equal(t, 465, rows[0].TotalPublications)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].TotalPublications, rows[i].TotalPublications)
	}
}

func TestRows_TiesKeepOriginalOrder(t *testing.T) {
	records := testutil.Records(
		roster.Row{Seq: 3, Name: "Dr C", JournalPublications: 1},
		roster.Row{Seq: 1, Name: "Dr A", JournalPublications: 1},
		roster.Row{Seq: 2, Name: "Dr B", JournalPublications: 2},
	)
	rows := export.Rows(records)

	seqs := make([]int, len(rows))
	for i, r := range rows {
		seqs[i] = r.Seq
	}
	assert.Equal(t, []int{2, 3, 1}, seqs)
}

func TestRows_Empty(t *testing.T) {
	rows := export.Rows(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))
	assert.Equal(t, strings.Join(export.Columns, ",")+"\n", buf.String())
}

func TestRow_StringsMatchColumns(t *testing.T) {
	r := export.FromRecord(roster.NewRecord(roster.Row{
		Seq: 7, Name: "Dr Balwinder Raj", Rank: "Associate Professor", Domain: "Nanoelectronics",
		JournalPublications: 107, ConferencePublications: 51, BookChapters: 21,
		ProjectsCompleted: 7, ProjectsOngoing: 3,
	}))
	assert.Equal(t, []string{
		"7", "Dr Balwinder Raj", "Associate Professor", "Nanoelectronics",
		"107", "51", "21", "179", "7", "3", "10",
	}, r.Strings())
	assert.Len(t, r.Strings(), len(export.Columns))
}

func TestCSV_RoundTrip(t *testing.T) {
	s := roster.New(dataset.Builtin())
	rows := export.Rows(s.All())

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))

	parsed, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, parsed)

	for _, p := range parsed {
		original, ok := s.BySequence(p.Seq)
		require.True(t, ok)
		assert.Equal(t, original.Row, p.Source())
	}
}

func TestCSV_QuotesCommas(t *testing.T) {
	s := roster.New(dataset.Builtin())
	director, ok := s.BySequence(1)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, export.Rows([]roster.FacultyRecord{director})))
	assert.Contains(t, buf.String(), `"Director, NITJ"`)
}

func TestReadCSV_Errors(t *testing.T) {
	header := strings.Join(export.Columns, ",")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty input"},
		{"wrong header", strings.Replace(header, "S_No", "Seq", 1) + "\n", `expected "S_No"`},
		{"short row", header + "\n1,Dr A\n", "line 2"},
		{"non-numeric", header + "\nx,Dr A,P,D,1,1,1,3,0,0,0\n", "column S_No"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteCSV_Golden(t *testing.T) {
	s := roster.New(dataset.Builtin())
	ml := filter.Apply(s.All(), filter.DefaultCriteria(s).WithDomains("ML"))

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, export.Rows(ml)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "ml_export", buf.Bytes())
}

func TestFileName(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "ece_research_data_20261019", export.FileName(export.LabelFiltered, clock.Now()))
	assert.Equal(t, "ece_complete_data_20261019.csv", export.CSVFileName(export.LabelComplete, clock.Now()))

	clock.Advance(time.Minute)
	assert.Equal(t, "ece_research_data_20261020", export.FileName(export.LabelFiltered, clock.Now()))
}

func TestDatasetLabels(t *testing.T) {
	assert.Equal(t, export.LabelFiltered, export.FilteredLabel("ece"))
	assert.Equal(t, export.LabelComplete, export.CompleteLabel("ece"))
	assert.Equal(t, "small_research_data", export.FilteredLabel("small"))
}
