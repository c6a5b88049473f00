package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultHorizonDays  = 365
	DefaultHTTPTimeout  = 10 * time.Second
	DefaultMaxRetries   = 2
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultOutputDir    = "."
	DefaultJSONFile     = "events.json"
	DefaultPineFile     = "events.pine"
	DefaultLogLevel     = "info"
)

func (c *Config) applyDefaults() {
	if c.Run.HorizonDays == 0 {
		c.Run.HorizonDays = DefaultHorizonDays
	}

	applySourceDefaults(&c.Sources.ForexFactory)
	applySourceDefaults(&c.Sources.Fed)
	applySourceDefaults(&c.Sources.Investing)
	applySourceDefaults(&c.Sources.Schedule)

	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.JSONFile == "" {
		c.Output.JSONFile = DefaultJSONFile
	}
	if c.Output.PineFile == "" {
		c.Output.PineFile = DefaultPineFile
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.Timeout == 0 {
		s.Timeout = DefaultHTTPTimeout
	}
	if s.MaxRetries == 0 {
		s.MaxRetries = DefaultMaxRetries
	}
	if s.RetryBackoff == 0 {
		s.RetryBackoff = DefaultRetryBackoff
	}
}
