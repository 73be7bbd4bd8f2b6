package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/report"
)

// NewTopCommand creates the top command.
func NewTopCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank faculty by total publications",
		Long: `Rank the filtered faculty by total publications, largest first.
Ties keep roster order.

Examples:
  facultymetrics top
  facultymetrics top --limit 5 --domain "Signal processing"`,
	}
	cmd.Flags().IntVar(&limit, "limit", report.DefaultTopN, "number of faculty to show")
	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		if limit < 0 {
			return invalidFlag(vc.out, fmt.Sprintf("limit must be non-negative, got %d", limit))
		}
		top := aggregate.TopByTotalPublications(vc.view, limit)
		return vc.out.Render(top, func(w io.Writer) {
			vc.header(w)
			writeTop(w, top, limit)
		})
	})
}

// invalidFlag reports a bad flag value and returns the matching exit error.
func invalidFlag(f *OutputFormatter, message string) error {
	if err := f.Error(ErrCodeInvalidFlag, message, nil); err != nil {
		return err
	}
	return NewExitError(ExitCommandError, message)
}
