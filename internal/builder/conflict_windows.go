//go:build windows

package builder

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isLockConflict reports sharing and byte-range lock violations, which is
// how Windows refuses to open a file another process holds open.
func isLockConflict(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) || errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
