// Package aggregate computes the scalar KPIs and grouped summaries shown for
// a roster view.
//
// Every function takes any record slice (the whole roster or a filtered
// view), never modifies it, and returns fresh values. Grouped results are
// always sorted with an explicit tiebreaker so repeated calls over the same
// input yield identical output. Empty input yields zero scalars and empty,
// non-nil slices.
//
// Grouping keys are compared verbatim: domains that differ only in case form
// separate groups.
package aggregate
