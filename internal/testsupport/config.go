package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"agrideck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The output and lock directories exist; history is disabled unless
// WithHistory is passed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Dir = filepath.Join(base, "output")
	cfgVal.Lock.Dir = filepath.Join(base, "locks")
	cfgVal.Logging.File = ""
	cfgVal.History.Enabled = false
	cfgVal.History.Path = filepath.Join(base, "history", "history.db")

	for _, dir := range []string{cfgVal.Output.Dir, cfgVal.Lock.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistory enables the build history database under the base directory.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
		if err := os.MkdirAll(filepath.Dir(b.cfg.History.Path), 0o755); err != nil {
			b.t.Fatalf("mkdir history dir: %v", err)
		}
	}
}

// WithOutputDir points the deck at dir instead of the generated output directory.
func WithOutputDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Dir = dir
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Lock.Dir)
}
