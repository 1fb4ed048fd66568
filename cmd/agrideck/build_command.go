package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agrideck/internal/builder"
	"agrideck/internal/config"
	"agrideck/internal/history"
	"agrideck/internal/logging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deck and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the deck to this path instead of the configured location")
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, outputOverride string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, closer, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, err := builder.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	display := cfg.Output.FileName
	if override := strings.TrimSpace(outputOverride); override != "" {
		expanded, err := config.ExpandPath(override)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		opts.OutputPath = expanded
		display = override
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("build history unavailable", logging.Error(err))
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	_, err = builder.New(opts).BuildAndSave(cmd.Context())
	return reportBuild(cmd.OutOrStdout(), display, err)
}
