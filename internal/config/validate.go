package config

import (
	"errors"
	"fmt"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that all values are usable after defaults were applied.
func (c *Config) Validate() error {
	if c.Run.HorizonDays < 1 {
		return errors.New("run.horizon_days must be >= 1")
	}

	if err := c.Sources.ForexFactory.validate("sources.forexfactory"); err != nil {
		return err
	}
	if err := c.Sources.Fed.validate("sources.fed"); err != nil {
		return err
	}
	if err := c.Sources.Investing.validate("sources.investing"); err != nil {
		return err
	}
	if err := c.Sources.Schedule.validate("sources.schedule"); err != nil {
		return err
	}

	if c.Output.JSONFile == "" {
		return errors.New("output.json_file is required")
	}
	if c.Output.PineFile == "" {
		return errors.New("output.pine_file is required")
	}
	if c.Output.JSONFile == c.Output.PineFile {
		return fmt.Errorf("output.json_file and output.pine_file are both %q", c.Output.JSONFile)
	}

	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be debug/info/warn/error, got %q", c.Log.Level)
	}

	return nil
}

func (s *SourceConfig) validate(prefix string) error {
	if s.Timeout <= 0 {
		return fmt.Errorf("%s.timeout must be positive", prefix)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("%s.max_retries must be >= 0", prefix)
	}
	if s.RetryBackoff <= 0 {
		return fmt.Errorf("%s.retry_backoff must be positive", prefix)
	}
	return nil
}
