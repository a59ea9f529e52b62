package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssel/internal/highlight"
)

var explainCmd = &cobra.Command{
	Use:   "explain SELECTOR...",
	Short: "Show the fragments of built selectors",
	Long: `Split each selector into its fragments and combinators and print them
one per line, colored by kind. The selector is not validated.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		useColors := getBool("color", false)
		for i, arg := range args {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			explain(cmd.OutOrStdout(), arg, useColors)
		}
		return nil
	},
}

// explain prints a selector followed by one line per segment
func explain(w io.Writer, sel string, useColors bool) {
	segs := highlight.Segments(sel)
	fmt.Fprintln(w, highlight.Render(segs, useColors))

	for _, seg := range segs {
		text := seg.Text
		if seg.Role == highlight.RoleCombinator {
			text = strings.TrimSpace(text)
			if text == "" {
				text = "(descendant)"
			}
		}
		fmt.Fprintf(w, "  %-15s %s\n", seg.Role, text)
	}
}
