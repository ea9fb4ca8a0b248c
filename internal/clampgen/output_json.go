package clampgen

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string       `json:"version"`
	Summary   JSONSummary  `json:"summary"`
	Issues    []JSONIssue  `json:"issues"`
	TopTokens []TokenCount `json:"top_tokens"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	Errors         int `json:"errors"`
	Warnings       int `json:"warnings"`
	FilesScanned   int `json:"files_scanned"`
	TokenRefs      int `json:"token_refs"`
	DistinctTokens int `json:"distinct_tokens"`
	BreakpointRefs int `json:"breakpoint_refs"`
	HardcodedRefs  int `json:"hardcoded_refs"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Suggestion string `json:"suggestion,omitempty"`
	Source     string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Suggestion: suggestion,
			Source:     source,
		}
	}

	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Errors:         result.ErrorCount,
			Warnings:       result.WarningCount,
			FilesScanned:   result.FilesScanned,
			TokenRefs:      result.TokenRefs,
			DistinctTokens: len(result.TokensUsed),
			BreakpointRefs: result.BreakpointRefs,
			HardcodedRefs:  result.HardcodedRefs,
		},
		Issues:    jsonIssues,
		TopTokens: TopTokens(result.TokensUsed, 10),
	}
}
