//go:build windows

package preflight

import (
	"golang.org/x/sys/windows"
)

func checkWritable(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return windows.ERROR_ACCESS_DENIED
	}
	return nil
}
