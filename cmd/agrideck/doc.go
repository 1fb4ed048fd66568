// Package main hosts the agrideck CLI entrypoint and command graph.
//
// Running the binary with no arguments builds the AgriSense deck into the
// working directory and prints a single result line. Subcommands expose the
// deck outline, read-back inspection of saved files, the optional build
// history, preflight checks and configuration scaffolding.
//
// Keep this package lean: deck content lives in internal/deck, rendering in
// internal/pptx and the save flow in internal/builder.
package main
