package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/roster"
)

func parseFilterFlags(t *testing.T, args ...string) (*cobra.Command, *FilterOptions) {
	t.Helper()
	cmd := &cobra.Command{Use: "flags"}
	opts := &FilterOptions{}
	bindFilterFlags(cmd, opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func TestFilterOptions_AbsentFlagsSelectUniverse(t *testing.T) {
	s := roster.New(dataset.Builtin())
	cmd, opts := parseFilterFlags(t)

	c, err := opts.criteria(cmd, s)
	require.NoError(t, err)
	assert.Equal(t, s.Ranks(), c.Ranks)
	assert.Equal(t, s.Domains(), c.Domains)
	assert.Empty(t, c.NameContains)
	assert.Zero(t, c.MinTotalPublications)
	assert.Zero(t, c.MinJournalPublications)
}

func TestFilterOptions_ExplicitValues(t *testing.T) {
	s := roster.New(dataset.Builtin())
	cmd, opts := parseFilterFlags(t,
		"--name", "raj",
		"--rank", "Director, NITJ",
		"--domain=",
		"--min-total", "10",
		"--min-journal", "5",
	)

	c, err := opts.criteria(cmd, s)
	require.NoError(t, err)
	assert.Equal(t, "raj", c.NameContains)
	assert.Equal(t, []string{"Director, NITJ"}, c.Ranks)
	assert.Empty(t, c.Domains)
	assert.Equal(t, 10, c.MinTotalPublications)
	assert.Equal(t, 5, c.MinJournalPublications)
}

func TestFilterOptions_NegativeThreshold(t *testing.T) {
	s := roster.New(dataset.Builtin())
	cmd, opts := parseFilterFlags(t, "--min-journal", "-1")

	_, err := opts.criteria(cmd, s)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalidFlag, loadErr.Code)
}
