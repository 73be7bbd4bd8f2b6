package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/report"
)

// NewProjectsCommand creates the projects command.
func NewProjectsCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Research projects per faculty member",
		Long: `Completed and ongoing research projects per faculty name, ordered by
completed projects. Faculty with no projects are left out; records sharing
a name are counted together.`,
	}
	cmd.Flags().IntVar(&limit, "limit", report.DefaultProjectsN, "number of faculty to show")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		if limit < 0 {
			return invalidFlag(vc.out, fmt.Sprintf("limit must be non-negative, got %d", limit))
		}
		p := aggregate.ProjectsByFaculty(vc.view, limit)
		return vc.out.Render(p, func(w io.Writer) {
			vc.header(w)
			writeProjects(w, p, limit)
		})
	})
}
