// Package roster holds the immutable faculty roster that every other package
// reads from.
//
// A Store is built once from rows supplied by a dataset source and is never
// mutated afterwards. Records keep only their source counts; the derived
// totals are computed from those counts on every access, so a record can
// never carry a total that disagrees with its parts.
//
// # Ordering
//
// Store.All returns records in input order. Sequence numbers are the stable
// identity of a record but do not reorder the roster.
//
// # Concurrency
//
// A Store is read-only after New returns and is safe for concurrent use
// without locking. All returns a fresh slice on every call so callers may
// reorder or truncate their copy freely.
package roster
