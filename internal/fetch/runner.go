package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rickgao/econcal/internal/aggregate"
	"github.com/rickgao/econcal/internal/model"
	"github.com/rickgao/econcal/internal/source"
)

// ErrNoEvents distinguishes the "no data available" outcome: every source
// came back empty or filtering removed everything. It is a reportable
// failure for the process, not an internal error of the pipeline.
var ErrNoEvents = errors.New("no high/medium impact events available")

// Runner drives the source adapters in order and aggregates their output.
type Runner struct {
	sources []source.Source
	logger  *slog.Logger
}

// NewRunner creates a Runner over the given sources. Source order matters:
// earlier sources win the first-seen dedup tie-break.
func NewRunner(sources []source.Source, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{sources: sources, logger: logger}
}

// FetchAll invokes every source sequentially and returns the raw per-source
// record lists. A source error degrades to an empty contribution.
func (r *Runner) FetchAll(ctx context.Context, horizon time.Duration) [][]model.Event {
	lists := make([][]model.Event, 0, len(r.sources))
	for _, s := range r.sources {
		events, err := s.Fetch(ctx, horizon)
		if err != nil {
			r.logger.Warn("source failed, continuing without it",
				"source", s.Name(),
				"error", err,
			)
			continue
		}
		r.logger.Info("source fetched",
			"source", s.Name(),
			"events", len(events),
		)
		lists = append(lists, events)
	}
	return lists
}

// Run executes the whole pipeline: fetch, deduplicate, filter, sort. It
// returns ErrNoEvents when nothing survives.
func (r *Runner) Run(ctx context.Context, horizon time.Duration) ([]model.Event, error) {
	lists := r.FetchAll(ctx, horizon)

	events := aggregate.Aggregate(lists...)
	r.logger.Info("aggregation complete",
		"sources", len(lists),
		"unique_events", len(events),
	)

	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}
