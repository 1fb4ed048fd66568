package builder

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"github.com/gofrs/flock"

	"agrideck/internal/textutil"
)

// LockPath returns the lock file guarding writes to outputPath. The name is
// derived from the absolute output path so two runs targeting the same deck
// contend while runs writing different decks do not. The file stays after
// Unlock: deleting it would let a concurrent run lock a fresh inode.
func LockPath(lockDir, outputPath string) string {
	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = filepath.Clean(outputPath)
	}
	sum := sha256.Sum256([]byte(abs))
	name := "agrideck-" + textutil.SanitizeToken(filepath.Base(abs)) + "-" + hex.EncodeToString(sum[:])[:12] + ".lock"
	return filepath.Join(lockDir, name)
}

func newOutputLock(lockDir, outputPath string) *flock.Flock {
	return flock.New(LockPath(lockDir, outputPath))
}
