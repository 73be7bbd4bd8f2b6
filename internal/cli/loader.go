package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/roach88/facultymetrics/internal/dataset"
	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
	"github.com/roach88/facultymetrics/internal/store"
)

// Error codes for JSON error responses.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeInvalidFlag  = "E002" // Invalid or conflicting flags
	ErrCodeLoadFailed   = "E004" // Dataset parse or validation failed
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeStoreFailed  = "E006" // SQLite open, query or import failed
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodeScenarioFail = "E008" // One or more scenarios failed
)

// LoadError represents a failure to obtain the roster.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Roster is the roster a command operates on, with where it came from.
type Roster struct {
	Store *roster.Store
	Label string // dataset label used in export file names
	db    *store.Store
}

// loadRoster resolves --db, --data or the built-in roster, in that order
// of precedence. --db and --data are mutually exclusive.
func loadRoster(ctx context.Context, opts *RootOptions) (*Roster, error) {
	switch {
	case opts.DB != "" && opts.Data != "":
		return nil, &LoadError{Code: ErrCodeInvalidFlag, Message: "--data and --db are mutually exclusive"}

	case opts.DB != "":
		if _, err := os.Stat(opts.DB); errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", opts.DB)}
		}
		st, err := store.Open(opts.DB)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to open database", Err: err}
		}
		rows, err := st.Rows(ctx)
		if err != nil {
			st.Close()
			return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to read roster", Err: err}
		}
		label, err := st.Label(ctx)
		if err != nil {
			st.Close()
			return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to read roster", Err: err}
		}
		if label == "" {
			label = dataset.Label(opts.DB)
		}
		slog.Debug("roster read from database", "path", opts.DB, "rows", len(rows))
		return &Roster{Store: roster.New(rows), Label: label, db: st}, nil

	case opts.Data != "":
		if _, err := os.Stat(opts.Data); errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset not found: %s", opts.Data)}
		}
		rows, err := dataset.LoadFile(opts.Data)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to load dataset", Err: err}
		}
		return &Roster{Store: roster.New(rows), Label: dataset.Label(opts.Data)}, nil

	default:
		return &Roster{Store: roster.New(dataset.Builtin()), Label: dataset.BuiltinLabel}, nil
	}
}

// View returns the records matching c in roster order. A database-backed
// roster selects through SQL and resolves the selected sequence numbers
// against the loaded snapshot; the others filter in memory.
func (r *Roster) View(ctx context.Context, c filter.Criteria) ([]roster.FacultyRecord, error) {
	if r.db == nil {
		return filter.Apply(r.Store.All(), c), nil
	}
	rows, err := r.db.Query(ctx, c)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to query roster", Err: err}
	}
	out := make([]roster.FacultyRecord, len(rows))
	for i, row := range rows {
		rec, ok := r.Store.BySequence(row.Seq)
		if !ok {
			return nil, &LoadError{
				Code:    ErrCodeStoreFailed,
				Message: fmt.Sprintf("seq %d is not in the loaded roster (database changed while reading)", row.Seq),
			}
		}
		out[i] = rec
	}
	return out, nil
}

// Close releases the database, if any.
func (r *Roster) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// failLoad reports a load error through f and converts it to an exit error.
func failLoad(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	message := err.Error()
	if loadErr != nil {
		message = loadErr.Message
		if loadErr.Err != nil {
			message = fmt.Sprintf("%s: %v", loadErr.Message, loadErr.Err)
		}
	}
	if outErr := f.Error(code, message, nil); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "failed to load roster", err)
}
