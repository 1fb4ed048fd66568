// Package history records deck builds in a SQLite database.
//
// Recording is opt-in ([history] enabled = true). Each build contributes one
// row keyed by its run id with the outcome, the output path, the slide count
// and the size of the written file. The CLI lists recent rows with
// `agrideck history`.
package history
