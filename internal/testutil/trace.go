package testutil

// FixedTraceIDGenerator returns the same trace ID every time.
//
// CLI JSON responses carry a trace ID; fixing it makes command output
// byte-identical across runs for golden comparison.
//
// Thread-safety: FixedTraceIDGenerator is stateless and safe for concurrent use.
type FixedTraceIDGenerator struct {
	id string
}

// NewFixedTraceIDGenerator creates a new fixed trace ID generator.
// If id is empty, Generate() returns "test-trace-default".
func NewFixedTraceIDGenerator(id string) *FixedTraceIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedTraceIDGenerator{id: id}
}

// Generate returns the fixed trace ID.
//
// Implements cli.TraceIDGenerator interface.
func (g *FixedTraceIDGenerator) Generate() string {
	return g.id
}
