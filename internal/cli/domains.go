package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
)

// NewDomainsCommand creates the domains command.
func NewDomainsCommand(rootOpts *RootOptions) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Total publications per research domain",
		Long: `Total publications per research domain, largest first.

Domains are grouped verbatim: "Signal processing" and "Signal Processing"
are reported separately. --stats breaks each total down by publication type.`,
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "break totals down by publication type")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		if stats {
			s := aggregate.DomainPublicationStats(vc.view)
			return vc.out.Render(s, func(w io.Writer) {
				vc.header(w)
				writeDomainStats(w, s)
			})
		}
		d := aggregate.SumByDomain(vc.view)
		return vc.out.Render(d, func(w io.Writer) {
			vc.header(w)
			writeDomains(w, d)
		})
	})
}
