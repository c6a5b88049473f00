package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/rickgao/econcal/internal/model"
)

// Investing is a placeholder for the Investing.com economic calendar. The
// site's anti-scraping measures need a dedicated client; until one exists
// this adapter contributes nothing and the other sources carry the run.
type Investing struct {
	logger *slog.Logger
}

// NewInvesting creates the placeholder adapter.
func NewInvesting(logger *slog.Logger) *Investing {
	if logger == nil {
		logger = slog.Default()
	}
	return &Investing{logger: logger}
}

func (i *Investing) Name() string { return "Investing.com" }

// Fetch returns no events.
func (i *Investing) Fetch(_ context.Context, _ time.Duration) ([]model.Event, error) {
	i.logger.Warn("investing.com requires advanced scraping; skipping source")
	return nil, nil
}
