package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"agrideck/internal/builder"
	"agrideck/internal/pptx"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkWritable(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWriter verifies that the PowerPoint writer can be constructed.
func CheckWriter() Result {
	const name = "PPTX writer"
	if err := pptx.CheckWriter(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: "PowerPoint 2007 writer available"}
}

// CheckOutputLock reports whether another agrideck run currently holds the
// lock for outputPath. The lock is released immediately when acquired.
func CheckOutputLock(lockDir, outputPath string) Result {
	const name = "Output lock"
	lockPath := builder.LockPath(lockDir, outputPath)
	if _, err := os.Stat(lockDir); errors.Is(err, os.ErrNotExist) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: lock directory missing)", lockDir)}
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", lockPath, err)}
	}
	if !ok {
		return Result{Name: name, Detail: fmt.Sprintf("%s is being written by another run", outputPath)}
	}
	if err := lock.Unlock(); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: unlock: %v)", lockPath, err)}
	}
	return Result{Name: name, Passed: true, Detail: "Free"}
}

func outputDir(outputPath string) string {
	return filepath.Dir(outputPath)
}

func historyDir(dbPath string) string {
	return filepath.Dir(dbPath)
}
