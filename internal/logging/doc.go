// Package logging constructs the slog loggers used across the ingest
// pipeline and exposes small helpers for building structured attributes.
package logging
