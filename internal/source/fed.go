package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/rickgao/econcal/internal/model"
)

// DefaultFedURL is the Federal Reserve FOMC meeting calendar page.
const DefaultFedURL = "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm"

// fomcDatePattern matches "January 27, 2026" style dates inside link text.
var fomcDatePattern = regexp.MustCompile(`(\w+)\s+(\d+),?\s+(\d{4})`)

// pressConferenceOffset is how long after the rate decision the press
// conference starts.
const pressConferenceOffset = 30 * time.Minute

// Fed scrapes FOMC meeting dates from the Federal Reserve calendar. Each
// meeting yields the rate decision and economic projections at 2:00 PM
// Eastern plus the press conference half an hour later, all High impact.
type Fed struct {
	cfg    ClientConfig
	client *http.Client
	logger *slog.Logger

	now func() time.Time // test hook
}

// NewFed creates the adapter.
func NewFed(cfg ClientConfig, logger *slog.Logger) *Fed {
	cfg = cfg.withDefaults()
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultFedURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fed{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
		logger: logger,
		now:    time.Now,
	}
}

func (f *Fed) Name() string { return "Federal Reserve" }

// Fetch downloads the FOMC calendar and extracts upcoming meetings.
func (f *Fed) Fetch(ctx context.Context, horizon time.Duration) ([]model.Event, error) {
	doc, err := getDocument(ctx, f.client, f.cfg, f.cfg.BaseURL, f.logger)
	if err != nil {
		return nil, fmt.Errorf("fed calendar fetch: %w", err)
	}

	links := findAll(doc, func(n *html.Node) bool { return n.Data == "a" })

	now := f.now().UTC()
	cutoff := now.Add(horizon)

	var events []model.Event
	seen := make(map[time.Time]bool)
	for _, link := range links {
		text := nodeText(link)
		if !strings.Contains(text, "FOMC") && !strings.Contains(text, "Federal Open") {
			continue
		}

		at, ok := parseFOMCDate(text)
		if !ok || seen[at] {
			continue
		}
		seen[at] = true

		if !at.After(now) || at.After(cutoff) {
			continue
		}

		events = append(events, f.meetingEvents(at)...)
	}

	f.logger.Info("fed calendar fetched", "events", len(events))
	return events, nil
}

// parseFOMCDate extracts the meeting date from link text and anchors it to
// the customary 2:00 PM Eastern release time.
func parseFOMCDate(text string) (time.Time, bool) {
	m := fomcDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	for _, layout := range []string{"January 2, 2006 3:04 PM", "Jan 2, 2006 3:04 PM"} {
		s := fmt.Sprintf("%s %s, %s 2:00 PM", m[1], m[2], m[3])
		if t, err := time.ParseInLocation(layout, s, eastern); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func (f *Fed) meetingEvents(at time.Time) []model.Event {
	var events []model.Event
	for _, kind := range []string{"Interest Rate Decision", "Economic Projections", "Press Conference"} {
		when := at
		if kind == "Press Conference" {
			when = at.Add(pressConferenceOffset)
		}
		ev, err := model.NewEvent("FOMC "+kind, when, model.ImpactHigh, nil, nil, f.Name())
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events
}
