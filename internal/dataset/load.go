package dataset

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/facultymetrics/internal/roster"
)

// LoadFile reads a roster file, choosing the parser by extension.
func LoadFile(path string) ([]roster.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var rows []roster.Row
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		rows, err = ParseYAML(data)
	case ".cue":
		rows, err = ParseCUE(filepath.Base(path), data)
	case ".csv":
		rows, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q (want .yaml, .yml, .cue or .csv)", ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("dataset loaded", "path", path, "rows", len(rows))
	return rows, nil
}

// Label derives an export label from a dataset path: the file name without
// its extension.
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
