package preflight

import (
	"fmt"
	"os"
	"time"

	"agrideck/internal/config"
)

// OutputProbe reports whether a previously built deck exists.
type OutputProbe struct {
	Exists  bool
	Path    string
	Size    int64
	ModTime time.Time
}

// ProbeOutput stats the configured output file.
func ProbeOutput(cfg *config.Config) OutputProbe {
	if cfg == nil {
		return OutputProbe{}
	}
	path, err := cfg.OutputPath()
	if err != nil {
		return OutputProbe{}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return OutputProbe{Path: path}
	}
	return OutputProbe{Exists: true, Path: path, Size: info.Size(), ModTime: info.ModTime()}
}

// Detail renders a display-friendly summary for status output.
func (p OutputProbe) Detail() string {
	if !p.Exists {
		return "Not built yet"
	}
	return fmt.Sprintf("%s (%d bytes, %s)", p.Path, p.Size, p.ModTime.Format(time.DateTime))
}

// CheckHistoryFromConfig evaluates the build history setting.
func CheckHistoryFromConfig(cfg *config.Config) Result {
	const name = "Build history"

	if cfg == nil {
		return Result{Name: name, Detail: "Unknown"}
	}
	if !cfg.History.Enabled {
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	}
	if _, err := os.Stat(cfg.History.Path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first build)", cfg.History.Path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", cfg.History.Path, err)}
	}
	return Result{Name: name, Passed: true, Detail: cfg.History.Path}
}
