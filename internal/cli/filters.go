package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

// FilterOptions holds the filter flags shared by every view command.
type FilterOptions struct {
	Name       string
	Ranks      []string
	Domains    []string
	MinTotal   int
	MinJournal int
}

// bindFilterFlags registers the filter flags on cmd.
//
// --rank and --domain are string arrays rather than slices so values
// containing commas ("Director, NITJ") survive intact.
func bindFilterFlags(cmd *cobra.Command, opts *FilterOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", "", "keep names containing this text (case-insensitive)")
	cmd.Flags().StringArrayVar(&opts.Ranks, "rank", nil, "keep this rank (repeatable; --rank= keeps none)")
	cmd.Flags().StringArrayVar(&opts.Domains, "domain", nil, "keep this domain (repeatable; --domain= keeps none)")
	cmd.Flags().IntVar(&opts.MinTotal, "min-total", 0, "minimum total publications")
	cmd.Flags().IntVar(&opts.MinJournal, "min-journal", 0, "minimum journal publications")
}

// criteria builds filter criteria for s from the flags set on cmd.
//
// An absent --rank or --domain selects every value present in the roster.
// A flag given only empty values selects none.
func (o *FilterOptions) criteria(cmd *cobra.Command, s *roster.Store) (filter.Criteria, error) {
	if o.MinTotal < 0 || o.MinJournal < 0 {
		return filter.Criteria{}, &LoadError{
			Code:    ErrCodeInvalidFlag,
			Message: fmt.Sprintf("thresholds must be non-negative (min-total %d, min-journal %d)", o.MinTotal, o.MinJournal),
		}
	}

	c := filter.DefaultCriteria(s).
		WithName(o.Name).
		WithMinTotal(o.MinTotal).
		WithMinJournal(o.MinJournal)
	if cmd.Flags().Changed("rank") {
		c = c.WithRanks(nonEmpty(o.Ranks)...)
	}
	if cmd.Flags().Changed("domain") {
		c = c.WithDomains(nonEmpty(o.Domains)...)
	}
	return c, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
