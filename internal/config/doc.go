// Package config loads, validates, and normalizes the TOML configuration
// that drives the hansard ingest pipeline.
package config
