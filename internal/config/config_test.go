package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"agrideck/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(tempHome, ".config", "agrideck", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Output.FileName != "AgriSense_Presentation.pptx" {
		t.Fatalf("unexpected output file name %q", cfg.Output.FileName)
	}
	if cfg.Output.Dir != "" {
		t.Fatalf("expected empty output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Document.BodyFontSize != 24 {
		t.Fatalf("expected 24pt body text, got %d", cfg.Document.BodyFontSize)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "agrideck", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("history path = %q, want %q", cfg.History.Path, wantHistory)
	}
	if !filepath.IsAbs(cfg.Lock.Dir) {
		t.Fatalf("expected absolute lock dir, got %q", cfg.Lock.Dir)
	}
}

func TestOutputPathUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := config.Default()
	got, err := cfg.OutputPath()
	if err != nil {
		t.Fatalf("OutputPath: %v", err)
	}
	wd, _ := os.Getwd()
	if got != filepath.Join(wd, "AgriSense_Presentation.pptx") {
		t.Fatalf("unexpected output path %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "agrideck.toml")

	cfgVal := config.Default()
	cfgVal.Output.Dir = filepath.Join(dir, "out")
	cfgVal.Output.FileName = "pitch.pptx"
	cfgVal.Document.AccentColor = "#1e88e5"
	cfgVal.Logging.Format = "JSON"
	cfgVal.History.Enabled = true
	cfgVal.History.Path = filepath.Join(dir, "history.db")

	data, err := toml.Marshal(cfgVal)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file %q to be used, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Output.FileName != "pitch.pptx" {
		t.Fatalf("unexpected file name %q", cfg.Output.FileName)
	}
	if cfg.Document.AccentColor != "FF1E88E5" {
		t.Fatalf("accent colour not normalized: %q", cfg.Document.AccentColor)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("log format not lowercased: %q", cfg.Logging.Format)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[output]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"nested file name", func(c *config.Config) { c.Output.FileName = "a/b.pptx" }, "output.file_name"},
		{"wrong extension", func(c *config.Config) { c.Output.FileName = "deck.ppt" }, "output.file_name"},
		{"tiny font", func(c *config.Config) { c.Document.BodyFontSize = 2 }, "body_font_size"},
		{"bad colour", func(c *config.Config) { c.Document.AccentColor = "green" }, "accent_color"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"no title", func(c *config.Config) { c.Document.Title = "" }, "document.title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Document.Title != "AgriSense" {
		t.Fatalf("unexpected sample title %q", cfg.Document.Title)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Lock.Dir = filepath.Join(base, "locks")
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(base, "data", "history.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Lock.Dir, filepath.Dir(cfg.History.Path)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
