// Package dataset supplies roster rows to the roster store.
//
// Sources:
//   - Builtin: the ECE roster compiled into the binary
//   - YAML files (.yaml, .yml) with a top-level "faculty" list
//   - CUE files (.cue), unified with an embedded schema before decoding
//   - CSV files (.csv) in the export format
//
// Every source runs Validate before returning rows, so the roster store can
// trust its input: sequence numbers are positive and unique, name, rank and
// domain are non-empty, and counts are non-negative.
package dataset
