package clampgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then line, then column
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Replacement != nil {
		text += fmt.Sprintf(" (did you mean %q?)", issue.Replacement.NewText)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	totalIssues := len(result.Issues)

	fmt.Fprintln(r.w, "")

	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0 && result.TruncatedCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s; %s truncated):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	case result.TruncatedCount > 0:
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
	}

	if totalIssues > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", LinterName, totalIssues)
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format summary to see token usage", r.useColors))
	}
}

// PrintStatistics outputs reference counts and the most used tokens
func (r *Reporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Clamp usage", r.useColors))
	fmt.Fprintf(r.w, "  Files scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "  Token classes:        %d (%d distinct)\n", result.TokenRefs, len(result.TokensUsed))
	fmt.Fprintf(r.w, "  Breakpoint classes:   %d\n", result.BreakpointRefs)
	fmt.Fprintf(r.w, "  Hardcoded clamp():    %d\n", result.HardcodedRefs)
	fmt.Fprintf(r.w, "  Errors / warnings:    %d / %d\n", result.ErrorCount, result.WarningCount)

	top := TopTokens(result.TokensUsed, 5)
	if len(top) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Most used tokens", r.useColors))
	for _, t := range top {
		fmt.Fprintf(r.w, "  %-16s %d\n", t.Token, t.Count)
	}
}

// TokenCount pairs a token with its reference count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// TopTokens returns up to limit tokens ordered by count, then name.
func TopTokens(used map[string]int, limit int) []TokenCount {
	counts := make([]TokenCount, 0, len(used))
	for token, count := range used {
		counts = append(counts, TokenCount{Token: token, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Token < counts[j].Token
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
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
