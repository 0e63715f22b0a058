// Package logging assembles the structured slog loggers used across the
// launcher.
//
// It centralizes level and format plumbing and exposes small attribute
// helpers so command and sequencer code emits log lines with a consistent
// shape. The package also provides a no-op logger for tests.
package logging
