// Package filtersql compiles filter predicates to parameterized SQLite.
//
// CRITICAL: every query ends in ORDER BY ord ASC so database results come
// back in import order, matching filter.Apply over the same rows.
// CRITICAL: values are always bound as ? parameters, never interpolated.
package filtersql

import (
	"fmt"
	"strings"

	"github.com/roach88/facultymetrics/internal/filter"
)

// FoldFunc is the SQL function the store registers to fold names the way
// filter.Fold does. Without it name predicates cannot run.
const FoldFunc = "fold"

// Table is the roster table name.
const Table = "faculty"

// OrderColumn holds each row's position in the imported roster.
const OrderColumn = "ord"

// SourceColumns lists the stored source columns in roster.Row field order.
// Derived totals are never stored.
var SourceColumns = []string{
	"seq",
	"name",
	"rank",
	"domain",
	"journal_publications",
	"conference_publications",
	"book_chapters",
	"projects_completed",
	"projects_ongoing",
}

const totalPublicationsExpr = "(journal_publications + conference_publications + book_chapters)"

// Compiler compiles filter predicates to SQL.
type Compiler struct{}

// NewCompiler creates a Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns a SELECT of every source column filtered by p.
// A nil predicate selects the whole table.
func (c *Compiler) Compile(p filter.Predicate) (string, []any, error) {
	where, params, err := c.CompilePredicate(p)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s ASC",
		strings.Join(SourceColumns, ", "), Table, where, OrderColumn)
	return sql, params, nil
}

// CompilePredicate compiles p to a WHERE fragment and its parameters.
func (c *Compiler) CompilePredicate(p filter.Predicate) (string, []any, error) {
	switch pred := filter.Deref(p).(type) {
	case nil:
		return "1 = 1", nil, nil
	case filter.NameContains:
		if pred.Substring == "" {
			return "1 = 1", nil, nil
		}
		// instr avoids LIKE wildcard escaping; fold() matches filter.Fold.
		return fmt.Sprintf("(name <> '' AND instr(%s(name), ?) > 0)", FoldFunc),
			[]any{filter.Fold(pred.Substring)}, nil
	case filter.RankIn:
		return c.compileIn("rank", pred.Values)
	case filter.DomainIn:
		return c.compileIn("domain", pred.Values)
	case filter.MinTotalPublications:
		return totalPublicationsExpr + " >= ?", []any{pred.Min}, nil
	case filter.MinJournalPublications:
		return "journal_publications >= ?", []any{pred.Min}, nil
	case filter.And:
		return c.compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

// compileIn compiles a set-membership predicate. An empty set matches
// nothing and compiles to a constant false.
func (c *Compiler) compileIn(column string, values []string) (string, []any, error) {
	if len(values) == 0 {
		return "0 = 1", nil, nil
	}
	placeholders := make([]string, len(values))
	params := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		params[i] = v
	}
	// COLLATE BINARY keeps membership exact and case-sensitive.
	return fmt.Sprintf("%s COLLATE BINARY IN (%s)", column, strings.Join(placeholders, ", ")), params, nil
}

func (c *Compiler) compileAnd(and filter.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil
	}

	parts := make([]string, 0, len(and.Predicates))
	var params []any
	for _, pred := range and.Predicates {
		sql, ps, err := c.CompilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, ps...)
	}
	return strings.Join(parts, " AND "), params, nil
}
