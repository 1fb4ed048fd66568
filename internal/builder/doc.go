// Package builder assembles the AgriSense deck and saves it to disk.
//
// BuildAndSave is a straight line: confirm the writer exists, take the
// output lock, render the deck in memory, write the file once, then record
// the run in history when a recorder is configured. Two
// failures are expected and recoverable and are reported with sentinel
// errors: ErrOutputLocked when the target is held by another process (an
// office application on Windows, or another agrideck run anywhere), and
// ErrMissingDependency when the document engine cannot produce a writer.
// Every other failure is returned as-is.
package builder
