package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
)

// NewCrossTabCommand creates the crosstab command.
func NewCrossTabCommand(rootOpts *RootOptions) *cobra.Command {
	var dense bool
	cmd := &cobra.Command{
		Use:   "crosstab",
		Short: "Faculty count per domain and rank",
		Long: `Count the filtered faculty per (domain, rank) pair.

By default only pairs that occur are listed. --dense prints the full
domain x rank matrix with zero for absent pairs.`,
	}
	cmd.Flags().BoolVar(&dense, "dense", false, "print the full matrix with zero fill")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		cells := aggregate.CrossTabDomainRank(vc.view)
		if dense {
			t := aggregate.Pivot(cells)
			return vc.out.Render(t, func(w io.Writer) {
				vc.header(w)
				writePivot(w, t)
			})
		}
		return vc.out.Render(cells, func(w io.Writer) {
			vc.header(w)
			writeCrossTab(w, cells)
		})
	})
}
