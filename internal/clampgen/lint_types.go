package clampgen

// LintResult contains the outcome of a lint run
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	TokenRefs      int            // token classes found (p-clamp-2vh)
	BreakpointRefs int            // breakpoint classes found (top-clamp-1vw-1.0vh)
	HardcodedRefs  int            // literal clamp() expressions matching a token
	TokensUsed     map[string]int // token key -> references
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
}

// ReportConfig controls how results are rendered
type ReportConfig struct {
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (clamplint) suffix (default: true)
	UseColors        bool // Force color output (default: auto-detect)
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows reference statistics only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
