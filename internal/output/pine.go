package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickgao/econcal/internal/model"
)

// PineScript renders the event list as a Pine Script fragment: five parallel
// arrays indexed 0..N-1 with a generation header. Absent forecast/previous
// values render as "N/A" because Pine string arrays have no null.
func PineScript(events []model.Event, now time.Time) []byte {
	var sb strings.Builder

	sb.WriteString("// ===== Auto-Generated Event Arrays (DO NOT EDIT MANUALLY) =====\n")
	sb.WriteString("// Generated: " + now.UTC().Format(time.RFC3339) + "\n")
	fmt.Fprintf(&sb, "// Total Events: %d\n", len(events))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "var int EVENT_COUNT = %d\n", len(events))
	sb.WriteString("var string[] event_names = array.new<string>(EVENT_COUNT)\n")
	sb.WriteString("var int[] event_times_utc = array.new<int>(EVENT_COUNT)\n")
	sb.WriteString("var string[] event_impact = array.new<string>(EVENT_COUNT)\n")
	sb.WriteString("var string[] event_forecast = array.new<string>(EVENT_COUNT)\n")
	sb.WriteString("var string[] event_previous = array.new<string>(EVENT_COUNT)\n")
	sb.WriteString("\n")

	for i, ev := range events {
		t := ev.Time.UTC()
		stamp := fmt.Sprintf("timestamp(\"UTC\", %d, %d, %d, %d, %d)",
			t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())

		fmt.Fprintf(&sb, "// %d: %s - %s - %s\n", i, ev.Name, ev.Impact, ev.Source)
		fmt.Fprintf(&sb, "array.set(event_names, %d, \"%s\")\n", i, escapePine(ev.Name))
		fmt.Fprintf(&sb, "array.set(event_times_utc, %d, %s)\n", i, stamp)
		fmt.Fprintf(&sb, "array.set(event_impact, %d, \"%s\")\n", i, ev.Impact)
		fmt.Fprintf(&sb, "array.set(event_forecast, %d, \"%s\")\n", i, pineValue(ev.Forecast))
		fmt.Fprintf(&sb, "array.set(event_previous, %d, \"%s\")\n", i, pineValue(ev.Previous))
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

func pineValue(v *string) string {
	if v == nil {
		return "N/A"
	}
	return escapePine(*v)
}

// escapePine keeps source-provided text from breaking out of a Pine string
// literal.
func escapePine(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
