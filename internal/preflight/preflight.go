package preflight

import (
	"context"

	"agrideck/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	outputPath, err := cfg.OutputPath()
	if err != nil {
		results = append(results, Result{Name: "Output directory", Detail: err.Error()})
	} else {
		results = append(results, CheckDirectoryAccess("Output directory", outputDir(outputPath)))
		results = append(results, CheckOutputLock(cfg.Lock.Dir, outputPath))
	}

	results = append(results, CheckDirectoryAccess("Lock directory", cfg.Lock.Dir))
	results = append(results, CheckWriter())

	// History database directory (only when history is on)
	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("History directory", historyDir(cfg.History.Path)))
	}

	if err := ctx.Err(); err != nil {
		results = append(results, Result{Name: "Preflight", Detail: err.Error()})
	}
	return results
}
