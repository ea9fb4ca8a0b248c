package clampgen

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to issues, golangci-lint's default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		reporter := NewReporter(w, config)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
