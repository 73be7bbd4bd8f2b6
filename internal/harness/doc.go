// Package harness runs filter scenarios against a faculty roster.
//
// A scenario names a dataset, a set of filter criteria and the expectations
// the filtered view must meet. Each scenario runs against a fresh in-memory
// SQLite store: the criteria are evaluated both in memory with filter.Apply
// and in SQL with store.Query, and the two views must agree before any
// assertion is checked.
//
// # Scenario Format
//
//	name: ml_domain
//	description: "Filtering to the ML domain keeps five records"
//	dataset: ../rosters/small.yaml   # optional, relative to the scenario file
//	filter:
//	  name: "khosla"                 # optional substring
//	  ranks: [Professor]             # omitted = every rank, [] = no rank
//	  domains: [ML]                  # omitted = every domain, [] = no domain
//	  min_total: 0
//	  min_journal: 0
//	assertions:
//	  - type: count
//	    value: 5
//	  - type: seqs
//	    seqs: [4, 5, 8, 9, 12]
//	  - type: kpi
//	    field: total_publications
//	    value: 441
//	  - type: top
//	    name: "Dr Mamta Khosla"
//	    value: 102
//	  - type: domain_total
//	    domain: ML
//	    value: 441
//	  - type: empty
//
// Unknown fields are rejected so typos surface as load errors.
package harness
