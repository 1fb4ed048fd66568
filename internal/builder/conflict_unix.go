//go:build !windows

package builder

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isLockConflict reports busy-file errors. POSIX systems do not refuse to
// open a file that another process has open, so these are rare.
func isLockConflict(err error) bool {
	return errors.Is(err, unix.ETXTBSY) || errors.Is(err, unix.EBUSY)
}
