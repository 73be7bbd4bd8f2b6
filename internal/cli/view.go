package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

// viewContext is what a view command renders from.
type viewContext struct {
	ctx      context.Context
	roster   *Roster
	criteria filter.Criteria
	view     []roster.FacultyRecord
	out      *OutputFormatter
}

// header writes the roster line that opens every text view.
func (vc *viewContext) header(w io.Writer) {
	fmt.Fprintf(w, "Roster: %s (%d of %d faculty)\n\n", vc.roster.Label, len(vc.view), vc.roster.Store.Len())
}

// newViewCommand builds a command that loads the roster, applies the filter
// flags and hands the view to render.
func newViewCommand(rootOpts *RootOptions, cmd *cobra.Command, render func(vc *viewContext) error) *cobra.Command {
	filterOpts := &FilterOptions{}
	bindFilterFlags(cmd, filterOpts)
	cmd.Args = cobra.NoArgs
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runView(rootOpts, filterOpts, cmd, render)
	}
	return cmd
}

func runView(rootOpts *RootOptions, filterOpts *FilterOptions, cmd *cobra.Command, render func(vc *viewContext) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	f := rootOpts.formatter(cmd)

	r, err := loadRoster(ctx, rootOpts)
	if err != nil {
		return failLoad(f, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	c, err := filterOpts.criteria(cmd, r.Store)
	if err != nil {
		return failLoad(f, err)
	}
	view, err := r.View(ctx, c)
	if err != nil {
		return failLoad(f, err)
	}
	slog.Debug("view selected", "command", cmd.Name(), "label", r.Label, "records", len(view))

	return render(&viewContext{
		ctx:      ctx,
		roster:   r,
		criteria: c,
		view:     view,
		out:      f,
	})
}
