// Package logging assembles structured slog loggers and formatting helpers used
// across agrideck.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so build code can tag log lines
// with the run identifier. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Logs go to stderr so that stdout stays reserved for the one-line build
// report the CLI prints.
package logging
