package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/store"
)

// ImportResult is the payload reported after an import.
type ImportResult struct {
	Database string `json:"database"`
	Label    string `json:"label"`
	Rows     int    `json:"rows"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a roster file into a SQLite database",
		Long: `Validate a YAML, CUE or CSV roster and store it in the database named by
--db, replacing any roster already there. The database is created if it
does not exist. Other commands read it with --db.

Example:
  facultymetrics import roster.yaml --db ./faculty.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], label, cmd)
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "dataset label (default: file name without extension)")
	return cmd
}

func runImport(rootOpts *RootOptions, path, label string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if rootOpts.DB == "" {
		return invalidFlag(f, "--db is required for import")
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return failLoad(f, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset not found: %s", path)})
	}

	rows, err := dataset.LoadFile(path)
	if err != nil {
		return failLoad(f, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to load dataset", Err: err})
	}
	if label == "" {
		label = dataset.Label(path)
	}

	st, err := store.Open(rootOpts.DB)
	if err != nil {
		return failLoad(f, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to open database", Err: err})
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if err := st.ReplaceRoster(ctx, label, rows); err != nil {
		return failLoad(f, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to import roster", Err: err})
	}

	result := ImportResult{Database: rootOpts.DB, Label: label, Rows: len(rows)}
	return f.Render(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Imported %d row(s) into %s (label %s)\n", result.Rows, result.Database, result.Label)
	})
}
