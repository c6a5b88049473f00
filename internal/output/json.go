package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rickgao/econcal/internal/model"
)

// bkkZone is the fixed secondary display zone (Bangkok, no DST).
var bkkZone = time.FixedZone("BKK", 7*60*60)

// Metadata describes one generation run.
type Metadata struct {
	GeneratedUTC    string `json:"generated_utc"`
	RunID           string `json:"run_id"`
	TotalEvents     int    `json:"total_events"`
	TimezoneDisplay string `json:"timezone_display"`
	TimezoneUTC     string `json:"timezone_utc"`
	NextUpdate      string `json:"next_update"`
}

// EventJSON is the wire form of one event. Absent optional values render as
// null, not "N/A"; that convention is the Pine generator's.
type EventJSON struct {
	Name           string  `json:"name"`
	TimeUTC        string  `json:"time_utc"`
	TimeBKK        string  `json:"time_bkk"`
	Impact         string  `json:"impact"`
	Forecast       *string `json:"forecast"`
	Previous       *string `json:"previous"`
	Actual         *string `json:"actual"`
	Source         string  `json:"source"`
	TimestampUTCMs int64   `json:"timestamp_utc_ms"`
}

// Document is the full JSON artifact.
type Document struct {
	Metadata Metadata    `json:"metadata"`
	Events   []EventJSON `json:"events"`
}

// JSONDocument renders the event list as an indented JSON document. now is
// the generation instant; runID tags the run for diagnostics.
func JSONDocument(events []model.Event, runID string, now time.Time) ([]byte, error) {
	now = now.UTC()

	doc := Document{
		Metadata: Metadata{
			GeneratedUTC:    now.Format(time.RFC3339),
			RunID:           runID,
			TotalEvents:     len(events),
			TimezoneDisplay: "BKK (UTC+7)",
			TimezoneUTC:     "UTC",
			NextUpdate:      now.Add(24 * time.Hour).Format(time.RFC3339),
		},
		Events: make([]EventJSON, 0, len(events)),
	}

	for _, ev := range events {
		doc.Events = append(doc.Events, EventJSON{
			Name:           ev.Name,
			TimeUTC:        ev.Time.Format(time.RFC3339),
			TimeBKK:        ev.Time.In(bkkZone).Format(time.RFC3339),
			Impact:         string(ev.Impact),
			Forecast:       ev.Forecast,
			Previous:       ev.Previous,
			Actual:         ev.Actual,
			Source:         ev.Source,
			TimestampUTCMs: ev.Time.UnixMilli(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal events document: %w", err)
	}
	return data, nil
}
