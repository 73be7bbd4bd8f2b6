package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
)

// NewKPIsCommand creates the kpis command.
func NewKPIsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Show headline numbers for the filtered view",
		Long: `Show faculty count, publication and project totals, mean publications
and distinct domain count for the faculty matching the filter flags.

An empty view reports zero for every figure, mean included.`,
	}
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		k := aggregate.ComputeKPIs(vc.view)
		return vc.out.Render(k, func(w io.Writer) {
			vc.header(w)
			writeKPIs(w, k)
		})
	})
}
