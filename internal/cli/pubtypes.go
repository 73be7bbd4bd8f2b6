package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
)

// NewPubTypesCommand creates the pubtypes command.
func NewPubTypesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubtypes",
		Short: "Journal, conference and book chapter totals",
		Long:  `Split the filtered view's publications by type, with each type's share.`,
	}
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		p := aggregate.SumByPublicationType(vc.view)
		return vc.out.Render(p, func(w io.Writer) {
			vc.header(w)
			writePublicationTypes(w, p)
		})
	})
}
