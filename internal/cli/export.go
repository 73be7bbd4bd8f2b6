package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/export"
	"github.com/roach88/facultymetrics/internal/roster"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	Dir      string
	Complete bool
	Label    string
	YAML     bool
}

// ExportResult is the payload reported after an export.
type ExportResult struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered view as CSV",
		Long: `Write the filtered view to <label>_<YYYYMMDD>.csv, ordered by total
publications. The label defaults to <dataset>_research_data, or
<dataset>_complete_data with --complete, which ignores the filter flags and
exports the whole roster.

With --yaml the records are written in roster order as <label>_<YYYYMMDD>.yaml,
a dataset file that --data and import read back.

Examples:
  facultymetrics export --domain ML --dir ./out
  facultymetrics export --complete
  facultymetrics export --domain ML --yaml`,
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "output directory")
	cmd.Flags().BoolVar(&opts.Complete, "complete", false, "export the whole roster")
	cmd.Flags().StringVar(&opts.Label, "label", "", "file name label (default derived from the dataset)")
	cmd.Flags().BoolVar(&opts.YAML, "yaml", false, "write a YAML dataset instead of CSV")

	return newViewCommand(rootOpts, cmd, func(vc *viewContext) error {
		return runExport(rootOpts, opts, vc)
	})
}

func runExport(rootOpts *RootOptions, opts *ExportOptions, vc *viewContext) error {
	records := vc.view
	label := export.FilteredLabel(vc.roster.Label)
	if opts.Complete {
		records = vc.roster.Store.All()
		label = export.CompleteLabel(vc.roster.Label)
	}
	if opts.Label != "" {
		label = opts.Label
	}

	if info, err := os.Stat(opts.Dir); err != nil || !info.IsDir() {
		message := fmt.Sprintf("output directory not found: %s", opts.Dir)
		if outErr := vc.out.Error(ErrCodeNotFound, message, nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, message)
	}

	var (
		path string
		n    int
		err  error
	)
	if opts.YAML {
		path = filepath.Join(opts.Dir, export.FileName(label, rootOpts.now())+".yaml")
		n = len(records)
		err = writeYAMLFile(path, records)
	} else {
		path = filepath.Join(opts.Dir, export.CSVFileName(label, rootOpts.now()))
		rows := export.Rows(records)
		n = len(rows)
		err = writeCSVFile(path, rows)
	}
	if err != nil {
		if outErr := vc.out.Error(ErrCodeWriteFailed, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to write export", err)
	}
	slog.Info("export written", "path", path, "rows", n)

	result := ExportResult{Path: path, Rows: n}
	return vc.out.Render(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Exported %d row(s) to %s\n", result.Rows, result.Path)
	})
}

func writeCSVFile(path string, rows []export.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return export.WriteCSV(f, rows)
}

func writeYAMLFile(path string, records []roster.FacultyRecord) error {
	rows := make([]roster.Row, len(records))
	for i, r := range records {
		rows[i] = r.Row
	}
	data, err := dataset.MarshalYAML(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
