// Package aggregate implements the event pipeline core.
//
// The Aggregator:
//   - Concatenates adapter outputs into one working collection
//   - Deduplicates on (exact name, minute-truncated UTC time), first seen wins
//   - Drops Low-impact records
//   - Stable-sorts the remainder ascending by event time
//
// Aggregation is a pure transformation: it never fails and has no side
// effects. An empty result is a valid outcome the caller must treat as
// "no data available".
package aggregate
