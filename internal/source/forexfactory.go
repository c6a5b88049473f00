package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/rickgao/econcal/internal/impact"
	"github.com/rickgao/econcal/internal/model"
)

// DefaultForexFactoryURL is the public calendar page.
const DefaultForexFactoryURL = "https://www.forexfactory.com/calendar.php"

// ForexFactory scrapes the Forex Factory economic calendar.
//
// Row layout: Time | Impact | Event | (Detail) | Forecast | Previous.
type ForexFactory struct {
	cfg        ClientConfig
	classifier *impact.Classifier
	client     *http.Client
	logger     *slog.Logger

	now func() time.Time // test hook
}

// NewForexFactory creates the adapter. A nil classifier falls back to the
// builtin keyword lists.
func NewForexFactory(cfg ClientConfig, classifier *impact.Classifier, logger *slog.Logger) *ForexFactory {
	cfg = cfg.withDefaults()
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultForexFactoryURL
	}
	if classifier == nil {
		classifier = impact.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ForexFactory{
		cfg:        cfg,
		classifier: classifier,
		client:     newHTTPClient(cfg.Timeout),
		logger:     logger,
		now:        time.Now,
	}
}

func (f *ForexFactory) Name() string { return "Forex Factory" }

// Fetch downloads the US calendar and extracts upcoming High/Medium events.
func (f *ForexFactory) Fetch(ctx context.Context, horizon time.Duration) ([]model.Event, error) {
	url := f.cfg.BaseURL + "?month=all&country=us"

	doc, err := getDocument(ctx, f.client, f.cfg, url, f.logger)
	if err != nil {
		return nil, fmt.Errorf("forex factory fetch: %w", err)
	}

	rows := findAll(doc, func(n *html.Node) bool {
		return n.Data == "tr" && hasClass(n, "calendar__row")
	})
	if len(rows) == 0 {
		// Markup changed or a lightweight variant was served; fall back to
		// plain table rows.
		rows = findAll(doc, func(n *html.Node) bool { return n.Data == "tr" })
	}

	now := f.now().UTC()
	cutoff := now.Add(horizon)

	var events []model.Event
	for _, row := range rows {
		ev, ok := f.parseRow(row, now, cutoff)
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	f.logger.Info("forex factory fetched", "events", len(events))
	return events, nil
}

// parseRow converts one calendar row into an event; ok is false for header
// rows, malformed rows, past events, and events outside the horizon.
func (f *ForexFactory) parseRow(row *html.Node, now, cutoff time.Time) (model.Event, bool) {
	cells := childCells(row)
	if len(cells) < 5 {
		return model.Event{}, false
	}

	name := nodeText(cells[2])
	if name == "" || !f.classifier.Matches(name) {
		return model.Event{}, false
	}

	at, err := parseEasternTime(nodeText(cells[0]))
	if err != nil {
		return model.Event{}, false
	}
	if !at.After(now) || at.After(cutoff) {
		return model.Event{}, false
	}

	imp := f.rowImpact(nodeText(cells[1]), name)

	var forecast, previous *string
	forecast = optValue(nodeText(cells[4]))
	if len(cells) > 5 {
		previous = optValue(nodeText(cells[5]))
	}

	ev, err := model.NewEvent(name, at, imp, forecast, previous, f.Name())
	if err != nil {
		return model.Event{}, false
	}
	return ev, true
}

// rowImpact trusts the page's impact marker when present and classifies by
// name when it isn't.
func (f *ForexFactory) rowImpact(cell, name string) model.Impact {
	switch {
	case strings.Contains(cell, "High"):
		return model.ImpactHigh
	case strings.Contains(cell, "Medium"):
		return model.ImpactMedium
	case strings.Contains(cell, "Low"):
		return model.ImpactLow
	default:
		return f.classifier.Classify(name)
	}
}
