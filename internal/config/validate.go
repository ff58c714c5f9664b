package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.BaseURL == "" {
		return errors.New("source.base_url must be set")
	}
	parsed, err := url.Parse(c.Source.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("source.base_url is not a valid URL: %q", c.Source.BaseURL)
	}
	if c.Source.RequestTimeout <= 0 {
		return errors.New("source.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.FuzzyThreshold <= 0 || c.Matching.FuzzyThreshold > 1 {
		return errors.New("matching.fuzzy_threshold must be in (0, 1]")
	}
	if c.Matching.AmbiguityMargin < 0 || c.Matching.AmbiguityMargin >= c.Matching.FuzzyThreshold {
		return errors.New("matching.ambiguity_margin must be non-negative and below matching.fuzzy_threshold")
	}
	if c.Matching.ChairConfidence < 0 || c.Matching.ChairConfidence > 1 {
		return errors.New("matching.chair_confidence must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Ingest.StartDate); err != nil {
			return fmt.Errorf("ingest.start_date must be YYYY-MM-DD: %q", c.Ingest.StartDate)
		}
	}
	if c.Ingest.MaxDaysPerRun < 0 {
		return errors.New("ingest.max_days_per_run must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level is not a recognized level: %q", c.Logging.Level)
	}
	return nil
}
