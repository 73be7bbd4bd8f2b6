package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
)

// NewRanksCommand creates the ranks command.
func NewRanksCommand(rootOpts *RootOptions) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "Faculty count per rank",
		Long: `Count the filtered faculty per rank, most common first.
--stats shows completed and ongoing projects per rank instead.`,
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "show project totals per rank")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		if stats {
			s := aggregate.RankProjectStats(vc.view)
			return vc.out.Render(s, func(w io.Writer) {
				vc.header(w)
				writeRankStats(w, s)
			})
		}
		r := aggregate.CountByRank(vc.view)
		return vc.out.Render(r, func(w io.Writer) {
			vc.header(w)
			writeRanks(w, r)
		})
	})
}
