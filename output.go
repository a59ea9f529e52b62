package cssel

import (
	"fmt"
	"io"
	"os"
)

// OutputFormat represents the build output format
type OutputFormat string

const (
	// OutputText shows selectors, issues and a summary (interactive use)
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputList prints one selector per line and nothing else (piping)
	OutputList OutputFormat = "list"
)

// DetermineOutputFormat selects the output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet keeps stdout clean; the caller suppresses output entirely
	if quiet {
		return OutputList
	}

	switch formatFlag {
	case "text":
		return OutputText
	case "json":
		return OutputJSON
	case "list":
		return OutputList
	default:
		// Invalid or empty format falls back to the default
		return DetermineDefaultOutputFormat()
	}
}

// DetermineDefaultOutputFormat returns the default output format
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputText
}

// WriteOutput writes the build result in the specified format
func WriteOutput(w io.Writer, result *BuildResult, format OutputFormat, config BuildConfig) {
	switch format {
	case OutputText:
		reporter := NewReporter(w, config)
		reporter.PrintSelectors(result.Selectors)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputList:
		for _, sel := range result.Selectors {
			fmt.Fprintln(w, sel.Text)
		}
	}
}
