package dataset

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/facultymetrics/internal/roster"
)

//go:embed schema.cue
var schemaCUE string

// ParseCUE compiles a CUE roster, unifies it with the embedded #Faculty
// schema and decodes the concrete result. Schema violations report CUE
// positions from filename.
func ParseCUE(filename string, data []byte) ([]roster.Row, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filename, err)
	}

	var doc document
	if err := unified.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if doc.Faculty == nil {
		doc.Faculty = []roster.Row{}
	}
	if err := Validate(doc.Faculty); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filename, err)
	}
	return doc.Faculty, nil
}
