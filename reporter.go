package cssel

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yacobolo/cssel/internal/highlight"
)

// Reporter handles formatting and outputting build results
type Reporter struct {
	w                io.Writer
	useColors        bool
	printSpecificity bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config BuildConfig) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        shouldUseColors(config),
		printSpecificity: config.PrintSpecificity,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config BuildConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSelectors outputs each built selector as "name: selector"
func (r *Reporter) PrintSelectors(selectors []BuiltSelector) {
	for _, sel := range selectors {
		text := highlight.Render(highlight.Segments(sel.Text), r.useColors)
		if r.printSpecificity {
			fmt.Fprintf(r.w, "%s: %s %s\n", sel.Name, text,
				highlight.RenderStyle(highlight.StyleGray, "("+sel.Specificity.String()+")", r.useColors))
			continue
		}
		fmt.Fprintf(r.w, "%s: %s\n", sel.Name, text)
	}
}

// PrintIssues outputs issues as "file:selector[:part]: message (severity)"
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then position in the file
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Index != issues[j].Pos.Index {
			return issues[i].Pos.Index < issues[j].Pos.Index
		}
		return issues[i].Pos.Part < issues[j].Pos.Part
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%s:", issue.Pos.Filename, issue.Pos.Selector)
	if issue.Pos.Part > 0 {
		location = fmt.Sprintf("%s:%s:%d:", issue.Pos.Filename, issue.Pos.Selector, issue.Pos.Part)
	}

	style := highlight.StyleRed
	if issue.Severity == SeverityWarning {
		style = highlight.StyleYellow
	}

	fmt.Fprintf(r.w, "%s %s %s\n",
		highlight.RenderStyle(highlight.StyleCyan, location, r.useColors),
		issue.Text,
		highlight.RenderStyle(style, "("+issue.Severity+")", r.useColors))
}

// PrintSummary outputs the selector and issue count summary
func (r *Reporter) PrintSummary(result BuildResult) {
	fmt.Fprintln(r.w, "")

	selectors := pluralizeCount(len(result.Selectors), "selector", "selectors")
	if len(result.Issues) == 0 {
		fmt.Fprintf(r.w, "%s, no issues\n", highlight.RenderStyle(highlight.StyleGreen, selectors, r.useColors))
	} else {
		fmt.Fprintf(r.w, "%s, %s (%s, %s)\n",
			selectors,
			pluralizeCount(len(result.Issues), "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", highlight.RenderStyle(highlight.StyleYellow, "Warning:", r.useColors), w)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
