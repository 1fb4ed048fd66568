package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agrideck/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var forceColor bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify directories, the output lock and the PPTX writer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := forceColor || shouldColorize(out)

			results := preflight.RunAll(cmd.Context(), cfg)
			failed := 0
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				if !r.Passed {
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, passFail(r.Passed), r.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("State", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configDetail(ctx), colorize))
			probe := preflight.ProbeOutput(cfg)
			fmt.Fprintln(out, renderStatusLine("Deck", statusInfo, probe.Detail(), colorize))
			hist := preflight.CheckHistoryFromConfig(cfg)
			histKind := statusInfo
			if !hist.Passed {
				histKind = statusWarn
			}
			fmt.Fprintln(out, renderStatusLine(hist.Name, histKind, hist.Detail, colorize))

			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&forceColor, "force-color", false, "Colorize output even when stdout is not a terminal")
	return cmd
}

func configDetail(ctx *commandContext) string {
	if !ctx.configExists {
		return "defaults (no config file)"
	}
	return ctx.configPath
}
