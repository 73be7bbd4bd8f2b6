package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/report"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := report.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Every summary of the filtered view at once",
		Long: `Print KPIs, top publishers, domain totals, project leaders, rank counts,
publication types and the domain x rank table for the filtered view.

JSON output carries every section, including per-domain and per-rank
breakdowns and the dense domain x rank matrix.`,
	}
	cmd.Flags().IntVar(&opts.TopN, "top", report.DefaultTopN, "number of top publishers")
	cmd.Flags().IntVar(&opts.ProjectsN, "projects", report.DefaultProjectsN, "number of project leaders")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		if opts.TopN < 0 || opts.ProjectsN < 0 {
			return invalidFlag(vc.out, fmt.Sprintf("limits must be non-negative (top %d, projects %d)", opts.TopN, opts.ProjectsN))
		}
		rep := report.FromView(vc.roster.Store, vc.criteria, vc.view, opts)
		return vc.out.Render(rep, func(w io.Writer) {
			vc.header(w)
			writeKPIs(w, rep.KPIs)
			fmt.Fprintln(w)
			writeTop(w, rep.Top, opts.TopN)
			fmt.Fprintln(w)
			writeDomains(w, rep.Domains)
			fmt.Fprintln(w)
			writeProjects(w, rep.Projects, opts.ProjectsN)
			fmt.Fprintln(w)
			writeRanks(w, rep.Ranks)
			fmt.Fprintln(w)
			writePublicationTypes(w, rep.PublicationTypes)
			fmt.Fprintln(w)
			writeCrossTab(w, rep.CrossTab)
		})
	})
}
