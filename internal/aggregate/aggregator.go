package aggregate

import (
	"sort"

	"github.com/rickgao/econcal/internal/model"
)

// Aggregate combines adapter outputs into one ordered, duplicate-free list of
// High and Medium impact events. Input order matters only for the first-seen
// tie-break: when several sources report the same (name, minute) event, the
// record appearing earliest in the concatenated stream is kept unchanged and
// later duplicates are discarded without field merging.
func Aggregate(lists ...[]model.Event) []model.Event {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	seen := make(map[model.Key]struct{}, total)
	out := make([]model.Event, 0, total)

	for _, l := range lists {
		for _, ev := range l {
			key := ev.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if ev.Impact == model.ImpactLow {
				continue
			}
			out = append(out, ev)
		}
	}

	// Stable sort keeps post-dedup order for genuinely distinct events that
	// share an instant.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})

	return out
}
