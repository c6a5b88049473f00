package model

import (
	"errors"
	"time"
)

// Impact classifies an event's expected market-moving significance.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Valid reports whether i is one of the three fixed tiers.
func (i Impact) Valid() bool {
	return i == ImpactHigh || i == ImpactMedium || i == ImpactLow
}

// Event is a single economic calendar event. Events are immutable value
// objects: adapters construct them, the aggregator copies them, and they are
// discarded after serialization.
type Event struct {
	Name     string    // Display name, also part of the dedup key
	Time     time.Time // Event instant, UTC
	Impact   Impact    // High, Medium, or Low; never empty
	Forecast *string   // Forecast value, nil when the source had none
	Previous *string   // Previous value, nil when the source had none
	Actual   *string   // Actual value, nil until released
	Source   string    // Provenance label for diagnostics; not identity
}

// Construction errors.
var (
	ErrEmptyName     = errors.New("event name is empty")
	ErrZeroTime      = errors.New("event time is zero")
	ErrInvalidImpact = errors.New("event impact is not High/Medium/Low")
)

// NewEvent builds a well-formed Event. The time is converted to UTC so no
// zone-ambiguous instant escapes construction. Empty name, zero time, or an
// impact outside the three tiers is rejected; callers drop such records at
// the adapter boundary.
func NewEvent(name string, at time.Time, impact Impact, forecast, previous *string, source string) (Event, error) {
	if name == "" {
		return Event{}, ErrEmptyName
	}
	if at.IsZero() {
		return Event{}, ErrZeroTime
	}
	if !impact.Valid() {
		return Event{}, ErrInvalidImpact
	}
	return Event{
		Name:     name,
		Time:     at.UTC(),
		Impact:   impact,
		Forecast: forecast,
		Previous: previous,
		Source:   source,
	}, nil
}

// Key identifies the real-world event an Event refers to. Two records with
// equal keys are duplicates reported by different sources.
type Key struct {
	Name   string
	Minute int64 // Unix seconds of the minute-truncated event time
}

// Key returns the dedup key: exact name plus the event time truncated (not
// rounded) to minute granularity. Sub-minute jitter between sources reporting
// the same release therefore collapses to one key.
func (e Event) Key() Key {
	return Key{
		Name:   e.Name,
		Minute: e.Time.Truncate(time.Minute).Unix(),
	}
}
