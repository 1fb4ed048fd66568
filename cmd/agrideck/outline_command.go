package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"agrideck/internal/deck"
)

func newOutlineCommand() *cobra.Command {
	var format string
	var full bool

	cmd := &cobra.Command{
		Use:         "outline",
		Short:       "Print the deck content without writing a file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := deck.AgriSense().Outline()
			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", "table":
				fmt.Fprintln(out, outlineTable(entries, full))
				return nil
			case "json":
				return writeJSON(cmd, entries)
			case "yaml", "yml":
				return writeYAML(out, entries)
			default:
				return fmt.Errorf("unsupported format %q (use table, json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&full, "full", false, "Include every line of each slide in the table")
	return cmd
}

func outlineTable(entries []deck.OutlineEntry, full bool) string {
	headers := []string{"#", "Layout", "Title", "Lines"}
	if full {
		headers = append(headers, "Content")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{strconv.Itoa(e.Index), e.Layout, e.Title, strconv.Itoa(len(e.Lines))}
		if full {
			row = append(row, strings.Join(e.Lines, "\n"))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft})
}
