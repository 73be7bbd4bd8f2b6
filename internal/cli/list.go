package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/roster"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Label   string                 `json:"label"`
	Total   int                    `json:"total"`
	Records []roster.FacultyRecord `json:"records"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the faculty matching the filters",
		Long: `List every faculty record that matches the filter flags, in roster order.

Examples:
  facultymetrics list --domain ML
  facultymetrics list --name khosla --format json
  facultymetrics list --rank Professor --rank "Associate Professor"`,
	}
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		return vc.out.Render(ListResult{
			Label:   vc.roster.Label,
			Total:   vc.roster.Store.Len(),
			Records: vc.view,
		}, func(w io.Writer) {
			vc.header(w)
			writeRecords(w, vc.view)
		})
	})
}
