package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/facultymetrics/internal/roster"
)

// document is the YAML and CUE top-level shape.
type document struct {
	Faculty []roster.Row `yaml:"faculty" json:"faculty"`
}

// ParseYAML decodes and validates a YAML roster. Unknown keys are rejected
// so misspelled count fields do not silently read as zero.
func ParseYAML(data []byte) ([]roster.Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(doc.Faculty); err != nil {
		return nil, fmt.Errorf("validate yaml roster: %w", err)
	}
	return doc.Faculty, nil
}

// MarshalYAML encodes rows in the format ParseYAML reads.
func MarshalYAML(rows []roster.Row) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Faculty: rows}); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
