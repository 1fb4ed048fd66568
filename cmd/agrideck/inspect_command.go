package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"agrideck/internal/config"
	"agrideck/internal/pptx"
)

func newInspectCommand() *cobra.Command {
	var asJSON bool
	var showText bool

	cmd := &cobra.Command{
		Use:         "inspect <file.pptx>",
		Short:       "Read a saved deck back and summarise its slides",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			summary, err := pptx.Inspect(path)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", summary.Path)
			if summary.Title != "" {
				fmt.Fprintf(out, "Title: %s\n", summary.Title)
			}
			fmt.Fprintf(out, "Slides: %d\n", len(summary.Slides))
			rows := make([][]string, 0, len(summary.Slides))
			for _, slide := range summary.Slides {
				rows = append(rows, []string{
					strconv.Itoa(slide.Index),
					slide.Title(),
					strconv.Itoa(len(slide.Body())),
					strconv.Itoa(len(slide.Shapes)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Paragraphs", "Text shapes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
			))
			if showText {
				for _, slide := range summary.Slides {
					fmt.Fprintf(out, "\n%d. %s\n", slide.Index, slide.Title())
					for _, para := range slide.Body() {
						fmt.Fprintf(out, "   - %s\n", para)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the summary as JSON")
	cmd.Flags().BoolVar(&showText, "text", false, "Print the text of every slide after the table")
	return cmd
}
