package fileutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// WriteFileVerified writes data to dst in a single truncating write and then
// re-reads the file to confirm size and SHA-256 digest. Errors from opening
// dst are returned unwrapped so callers can classify them with errors.Is.
func WriteFileVerified(dst string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return verify(dst, data)
}

func verify(path string, data []byte) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopen for verification: %w", err)
	}
	defer in.Close()

	hasher := sha256.New()
	written, err := io.Copy(hasher, in)
	if err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	if written != int64(len(data)) {
		return fmt.Errorf("write size mismatch: expected %d bytes, found %d bytes", len(data), written)
	}
	if want := sha256.Sum256(data); string(hasher.Sum(nil)) != string(want[:]) {
		return fmt.Errorf("write hash mismatch: %s corrupted on disk", path)
	}
	return nil
}
