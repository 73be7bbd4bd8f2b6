package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

func TestReplaceRoster_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := dataset.Builtin()
	require.NoError(t, s.ReplaceRoster(ctx, "ece", rows))

	got, err := s.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	label, err := s.Label(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ece", label)
}

func TestReplaceRoster_ReplacesPreviousSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceRoster(ctx, "ece", dataset.Builtin()))

	small := []roster.Row{
		{Seq: 1, Name: "Dr A", Rank: "Professor", Domain: "ML", JournalPublications: 3},
	}
	require.NoError(t, s.ReplaceRoster(ctx, "small", small))

	got, err := s.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, small, got)

	label, err := s.Label(ctx)
	require.NoError(t, err)
	assert.Equal(t, "small", label)
}

func TestReplaceRoster_ConstraintViolationRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceRoster(ctx, "ece", dataset.Builtin()))

	bad := []roster.Row{
		{Seq: 1, Name: "Dr A", Rank: "Professor", Domain: "ML"},
		{Seq: 2, Name: "Dr B", Rank: "Professor", Domain: "ML", BookChapters: -1},
	}
	err := s.ReplaceRoster(ctx, "bad", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seq 2")

	got, err := s.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 27, "failed import must leave previous roster intact")

	label, err := s.Label(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ece", label)
}

func TestLabel_EmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	label, err := s.Label(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", label)

	rows, err := s.Rows(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// TestReplaceRoster_KeepsImportOrder checks that rows come back in the order
// they were imported, not sorted by sequence number, for both whole reads
// and filtered queries.
func TestReplaceRoster_KeepsImportOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []roster.Row{
		{Seq: 3, Name: "Dr C", Rank: "Professor", Domain: "ML", JournalPublications: 10},
		{Seq: 1, Name: "Dr A", Rank: "Professor", Domain: "ML", JournalPublications: 10},
		{Seq: 2, Name: "Dr B", Rank: "Assistant Professor", Domain: "VLSI", JournalPublications: 4},
	}
	require.NoError(t, s.ReplaceRoster(ctx, "shuffled", rows))

	got, err := s.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	rs := roster.New(rows)
	c := filter.DefaultCriteria(rs).WithDomains("ML")
	queried, err := s.Query(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, seqs(queried))
	assert.Equal(t, recordSeqs(filter.Apply(rs.All(), c)), seqs(queried))
}
