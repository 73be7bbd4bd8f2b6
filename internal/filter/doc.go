// Package filter selects roster records with a conjunction of independent
// predicates.
//
// Criteria is the per-query value a caller builds; Criteria.Predicate lowers
// it to a predicate tree that can be evaluated in memory (Apply, Match) or
// compiled for a database by the filtersql package. Both paths must select
// the same records.
//
// SEALED INTERFACE:
//
// Predicate is sealed with a marker method. Only the types in this package
// implement it, so evaluators can switch over every case:
//
//	switch p := pred.(type) {
//	case NameContains:
//	case RankIn:
//	case DomainIn:
//	case MinTotalPublications:
//	case MinJournalPublications:
//	case And:
//	}
//
// EMPTY SETS:
//
// RankIn and DomainIn with no values match nothing. "No filter selected" is
// expressed by passing the whole universe, which DefaultCriteria does. The
// engine never guesses which of the two a caller meant.
package filter
