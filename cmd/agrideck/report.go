package main

import (
	"errors"
	"fmt"
	"io"

	"agrideck/internal/builder"
)

const missingDependencyRemedy = "Rebuild agrideck with the github.com/VantageDataChat/GoPPT module available (go mod download) and try again."

// reportBuild prints the one-line build outcome. Locked output and a missing
// writer are expected conditions and exit cleanly; anything else is returned.
func reportBuild(w io.Writer, name string, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(w, "Presentation saved successfully as '%s'\n", name)
		return nil
	case errors.Is(err, builder.ErrOutputLocked):
		fmt.Fprintf(w, "Error: Could not save file. Please close '%s' if it is open.\n", name)
		return nil
	case errors.Is(err, builder.ErrMissingDependency):
		fmt.Fprintln(w, "Error: the PPTX writer is unavailable.")
		fmt.Fprintln(w, missingDependencyRemedy)
		return nil
	default:
		return err
	}
}
