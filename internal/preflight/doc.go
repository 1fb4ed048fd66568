// Package preflight provides readiness checks for the paths and document
// engine agrideck depends on.
//
// The "agrideck check" command runs RunAll and renders each Result as a
// status line. Checks for optional features are skipped when the feature
// is disabled in the config.
package preflight
