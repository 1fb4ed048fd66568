package builder

import (
	"errors"
	"fmt"
	"io/fs"

	"agrideck/internal/history"
	"agrideck/internal/pptx"
)

var (
	// ErrOutputLocked reports that the output file is open or being written
	// elsewhere. Closing the file and re-running resolves it.
	ErrOutputLocked = errors.New("output file is in use")
	// ErrMissingDependency reports that the PowerPoint writer is unavailable.
	ErrMissingDependency = errors.New("document engine unavailable")
)

// classifySaveError maps a failure from writing path onto the builder's
// error taxonomy. Permission errors count as lock conflicts: that is how an
// office application holding the file surfaces on Windows.
func classifySaveError(path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) || isLockConflict(err) {
		return fmt.Errorf("%w: %s: %v", ErrOutputLocked, path, err)
	}
	return fmt.Errorf("write %s: %w", path, err)
}

func classifyRenderError(err error) error {
	if errors.Is(err, pptx.ErrWriterUnavailable) {
		return fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	return err
}

func statusFor(err error) history.Status {
	switch {
	case err == nil:
		return history.StatusSaved
	case errors.Is(err, ErrOutputLocked):
		return history.StatusOutputLocked
	case errors.Is(err, ErrMissingDependency):
		return history.StatusMissingDependency
	default:
		return history.StatusFailed
	}
}
