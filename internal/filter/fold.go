package filter

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes s for case-insensitive comparison: NFC composition
// followed by Unicode full case folding.
//
// A new Caser is built per call; Casers are stateful and not safe to share
// between goroutines.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
