package config

import "time"

// Config is the root configuration for a fetcher run.
type Config struct {
	Run     RunConfig     `yaml:"run"`
	Sources SourcesConfig `yaml:"sources"`
	Impact  ImpactConfig  `yaml:"impact"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// RunConfig bounds the fetch.
type RunConfig struct {
	HorizonDays int `yaml:"horizon_days"`
}

// SourcesConfig holds the per-adapter settings.
type SourcesConfig struct {
	ForexFactory SourceConfig `yaml:"forexfactory"`
	Fed          SourceConfig `yaml:"fed"`
	Investing    SourceConfig `yaml:"investing"`
	Schedule     SourceConfig `yaml:"schedule"`
}

// SourceConfig configures one source adapter. Zero values fall back to the
// adapter defaults, so an empty config block enables a source with stock
// settings.
type SourceConfig struct {
	Disabled     bool          `yaml:"disabled"`
	BaseURL      string        `yaml:"base_url"`
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// ImpactConfig tunes the keyword classifier. Extra keywords append to the
// builtin lists; IncludeSpecial merges the political/market-shock list into
// the High tier.
type ImpactConfig struct {
	ExtraHigh      []string `yaml:"extra_high"`
	ExtraMedium    []string `yaml:"extra_medium"`
	IncludeSpecial bool     `yaml:"include_special"`
}

// OutputConfig names the artifacts.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	JSONFile string `yaml:"json_file"`
	PineFile string `yaml:"pine_file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
