package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/rickgao/econcal/internal/model"
)

// scheduleYear is the year the hardcoded fallback covers. Bump the tables
// below when rolling it forward.
const scheduleYear = 2026

// fomcMeetings2026 is the published FOMC meeting schedule. Hours are UTC
// (2:00 PM Eastern release time).
var fomcMeetings2026 = []struct {
	month  time.Month
	day    int
	hour   int
	minute int
}{
	{time.January, 27, 19, 0},
	{time.March, 17, 19, 0},
	{time.May, 4, 19, 0},
	{time.June, 16, 19, 0},
	{time.July, 28, 19, 0},
	{time.September, 16, 19, 0},
	{time.November, 3, 19, 0},
	{time.December, 15, 19, 0},
}

// monthlyRelease describes a recurring indicator on its typical day of month.
// Hours are UTC.
type monthlyRelease struct {
	name   string
	day    int
	hour   int
	minute int
	impact model.Impact
}

var monthlyReleases = []monthlyRelease{
	{"Employment Report (NFP)", 7, 12, 30, model.ImpactHigh},
	{"Jobless Claims", 4, 12, 30, model.ImpactHigh},
	{"CPI Release", 12, 12, 30, model.ImpactHigh},
	{"PPI Release", 13, 12, 30, model.ImpactHigh},
	{"Retail Sales", 13, 12, 30, model.ImpactHigh},
	{"ISM Manufacturing PMI", 1, 12, 0, model.ImpactHigh},
	{"ISM Services PMI", 3, 12, 0, model.ImpactMedium},
	{"Durable Goods Orders", 25, 12, 30, model.ImpactMedium},
	{"Personal Income", 27, 12, 30, model.ImpactMedium},
	{"Personal Spending", 27, 13, 30, model.ImpactMedium},
	{"PCE Price Index", 27, 12, 30, model.ImpactHigh},
	{"Housing Starts", 18, 12, 30, model.ImpactHigh},
	{"Building Permits", 18, 12, 30, model.ImpactMedium},
	{"Existing Home Sales", 25, 14, 0, model.ImpactHigh},
	{"New Home Sales", 28, 14, 0, model.ImpactMedium},
}

// Schedule is the synthetic fallback adapter: it generates the known FOMC
// meetings and the typical monthly release calendar for the covered year.
// It implements the same Source contract as the network adapters and gets
// no special treatment downstream.
type Schedule struct {
	logger *slog.Logger
	now    func() time.Time // test hook
}

// NewSchedule creates the fallback adapter.
func NewSchedule(logger *slog.Logger) *Schedule {
	if logger == nil {
		logger = slog.Default()
	}
	return &Schedule{logger: logger, now: time.Now}
}

func (s *Schedule) Name() string { return "Hardcoded Schedule" }

// Fetch generates the fallback events inside (now, now+horizon].
func (s *Schedule) Fetch(_ context.Context, horizon time.Duration) ([]model.Event, error) {
	now := s.now().UTC()
	cutoff := now.Add(horizon)

	var events []model.Event

	for _, m := range fomcMeetings2026 {
		at := time.Date(scheduleYear, m.month, m.day, m.hour, m.minute, 0, 0, time.UTC)
		if !at.After(now) || at.After(cutoff) {
			continue
		}
		for _, kind := range []string{"Interest Rate Decision", "Economic Projections"} {
			if ev, err := model.NewEvent("FOMC "+kind, at, model.ImpactHigh, nil, nil, "Federal Reserve (Hardcoded)"); err == nil {
				events = append(events, ev)
			}
		}
		press := at.Add(pressConferenceOffset)
		if !press.After(cutoff) {
			if ev, err := model.NewEvent("FOMC Press Conference", press, model.ImpactHigh, nil, nil, "Federal Reserve (Hardcoded)"); err == nil {
				events = append(events, ev)
			}
		}
	}

	for month := time.January; month <= time.December; month++ {
		for _, r := range monthlyReleases {
			day := r.day
			if last := lastDayOfMonth(scheduleYear, month); day > last {
				day = last
			}
			at := time.Date(scheduleYear, month, day, r.hour, r.minute, 0, 0, time.UTC)
			if !at.After(now) || at.After(cutoff) {
				continue
			}
			if ev, err := model.NewEvent(r.name, at, r.impact, nil, nil, s.Name()); err == nil {
				events = append(events, ev)
			}
		}
	}

	s.logger.Info("hardcoded schedule generated", "events", len(events))
	return events, nil
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
