// Package model defines the canonical in-memory representation of a US
// economic calendar event shared by every stage of the pipeline.
//
// Conventions:
//   - Times: always UTC once an Event leaves construction
//   - Optional fields (forecast/previous/actual): nil pointer, never ""
//   - Identity for deduplication: (exact name, minute-truncated UTC time)
package model
