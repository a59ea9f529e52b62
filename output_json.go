package cssel

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Selectors []JSONSelector `json:"selectors"`
	Issues    []JSONIssue    `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Selectors    int `json:"selectors"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONSelector is a single built selector
type JSONSelector struct {
	File        string `json:"file"`
	Name        string `json:"name"`
	Selector    string `json:"selector"`
	Specificity [3]int `json:"specificity"`
	Combined    bool   `json:"combined,omitempty"`
}

// JSONIssue represents a single build issue
type JSONIssue struct {
	File     string `json:"file"`
	Selector string `json:"selector"`
	Part     int    `json:"part,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// WriteJSON writes the build result as JSON
func WriteJSON(w io.Writer, result *BuildResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts BuildResult to JSONOutput
func buildJSONOutput(result *BuildResult) JSONOutput {
	selectors := make([]JSONSelector, len(result.Selectors))
	for i, sel := range result.Selectors {
		selectors[i] = JSONSelector{
			File:        sel.File,
			Name:        sel.Name,
			Selector:    sel.Text,
			Specificity: sel.Specificity,
			Combined:    sel.Combined,
		}
	}

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Selector: issue.Pos.Selector,
			Part:     issue.Pos.Part,
			Severity: issue.Severity,
			Message:  issue.Text,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Selectors:    len(result.Selectors),
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Selectors: selectors,
		Issues:    issues,
	}
}
