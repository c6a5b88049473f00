package source

import (
	"context"
	"time"

	"github.com/rickgao/econcal/internal/model"
)

// Source produces raw event records from one data source. Fetch returns only
// well-formed future events inside the horizon; a non-nil error means the
// source contributed nothing this run.
type Source interface {
	Name() string
	Fetch(ctx context.Context, horizon time.Duration) ([]model.Event, error)
}

// ClientConfig holds the per-source HTTP settings. It carries no
// cross-request state; each Fetch call is independent.
type ClientConfig struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// withDefaults fills unset fields so adapters can rely on bounded requests.
func (c ClientConfig) withDefaults() ClientConfig {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 2
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = 500 * time.Millisecond
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// DefaultUserAgent mimics a desktop browser; the calendar sites reject the
// Go default agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
