package clampgen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "clamplint"
	Text        string       `json:"Text"`        // "unknown clamp token \"clamp-2.55vh\""
	Severity    string       `json:"Severity"`    // "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Hero.astro"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the class)
}

// Replacement provides a fix suggestion
type Replacement struct {
	NewText      string // "p-clamp-2.5vh"
	InlineLength int    // Length of text to replace
}

// LinterName is reported as the FromLinter of every issue.
const LinterName = "clamplint"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueUnknownToken      = "unknown clamp token %q in class %q"
	IssueUnknownBreakpoint = "breakpoint class %q is not defined in %s"
	IssueHardcodedClamp    = "hardcoded %q should use token %s"
)
