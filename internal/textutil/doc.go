// Package textutil holds the small text helpers shared by the deck model and
// the command line: slide text cleanup before it is written into OOXML parts,
// and token sanitising for names derived from file paths.
package textutil
