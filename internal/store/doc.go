// Package store provides a SQLite-backed roster source.
//
// The store keeps one roster snapshot: importing a dataset replaces the
// previous one in a single transaction. Rows are read back in import
// order, either whole or filtered in SQL by a compiled filter predicate.
//
// # Critical Patterns
//
// Derived totals are never stored. The faculty table holds only source
// counts; totals are recomputed by roster.FacultyRecord and, for
// threshold predicates, by SQL expressions over the same columns.
//
// Each row keeps its position in the imported roster and all queries order
// by it, so results follow the order the dataset listed them in.
//
// Name matching calls a fold() SQL function registered on every connection
// by a custom driver, so SQL and in-memory filtering fold case the same way.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
