package clampgen

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths      []string // Patterns to scan (defaults to the Tailwind content globs)
	StylesheetPath string   // Generated clamps.css
	Generate       Config   // Parameters the tokens were generated with
	Strict         bool     // Warnings fail the run too

	MaxIssuesPerLinter int // 0 = unlimited (default)
	MaxSameIssues      int // 0 = unlimited (default)
}

// lookup holds everything a reference is checked against
type lookup struct {
	tokens      *gen.TokenMap
	valueToKey  map[string]string         // clamp() value -> first token with it
	grid        map[gen.Unit][]gridPoint  // tokens by unit, for nearest-value suggestions
	sheet       *gen.Stylesheet           // classes defined in clamps.css
	breakpoints map[string]gen.Breakpoint // formatted vw -> pairing
	prefixes    []string                  // utility prefixes with breakpoint classes
}

type gridPoint struct {
	value float64
	key   string
}

// Lint checks clamp class usage in the scanned files against the generated
// tokens and stylesheet
func Lint(config LintConfig) (*gen.LintResult, error) {
	if err := config.Generate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Step 1: Parse the generated stylesheet
	sheet, err := gen.ParseStylesheetFile(config.StylesheetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet (run clampgen generate first): %w", err)
	}

	// Step 2: Rebuild tokens and lookup maps
	lk, err := buildLookup(config.Generate, sheet)
	if err != nil {
		return nil, err
	}

	// Step 3: Scan files for references
	scanPaths := config.ScanPaths
	if len(scanPaths) == 0 {
		scanPaths = config.Generate.Content
	}
	references, stats, err := ScanFiles(scanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 4: Analyze
	result := analyzeReferences(references, lk, config.StylesheetPath)
	result.FilesScanned = stats.FilesScanned

	// Step 5: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// Failed reports whether result should fail the build. Errors always fail;
// warnings only fail in strict mode.
func (c LintConfig) Failed(result *gen.LintResult) bool {
	if result.ErrorCount > 0 {
		return true
	}
	return c.Strict && result.WarningCount > 0
}

func buildLookup(config Config, sheet *gen.Stylesheet) (*lookup, error) {
	factors := config.Device.Factors()
	tokens, _, err := gen.GenerateSpacing(config.Spacing, factors)
	if err != nil {
		return nil, err
	}

	lk := &lookup{
		tokens:      tokens,
		valueToKey:  make(map[string]string, tokens.Len()),
		grid:        make(map[gen.Unit][]gridPoint),
		sheet:       sheet,
		breakpoints: make(map[string]gen.Breakpoint, len(config.Breakpoints)),
	}

	for _, key := range tokens.Keys() {
		value, _ := tokens.Get(key)
		if _, exists := lk.valueToKey[value]; !exists {
			lk.valueToKey[value] = key
		}

		unit := gen.Unit(key[len(key)-2:])
		n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(key, "clamp-"), string(unit)), 64)
		if err == nil {
			lk.grid[unit] = append(lk.grid[unit], gridPoint{value: n, key: key})
		}
	}

	for _, vw := range config.Breakpoints {
		bp := gen.PairBreakpoint(vw, factors.VWInRem, factors.VHInRem)
		lk.breakpoints[bp.VW] = bp
	}
	for _, p := range gen.Properties {
		lk.prefixes = append(lk.prefixes, p.Prefix)
	}

	return lk, nil
}

// analyzeReferences turns references into issues and usage counts
func analyzeReferences(references []ClassReference, lk *lookup, stylesheetPath string) *gen.LintResult {
	result := &gen.LintResult{
		TokensUsed: make(map[string]int),
	}
	sheetName := filepath.Base(stylesheetPath)

	for _, ref := range references {
		switch ref.Kind {
		case RefToken:
			result.TokenRefs++
			if _, ok := lk.tokens.Get(ref.Token); ok {
				result.TokensUsed[ref.Token]++
				continue
			}
			issue := newIssue(ref, gen.SeverityError, fmt.Sprintf(gen.IssueUnknownToken, ref.Token, ref.Class))
			if nearest := lk.nearestToken(ref.Token); nearest != "" {
				issue.Replacement = &gen.Replacement{
					NewText:      strings.Replace(ref.Class, ref.Token, nearest, 1),
					InlineLength: len(ref.Class),
				}
			}
			result.Issues = append(result.Issues, issue)
			result.ErrorCount++

		case RefBreakpoint:
			result.BreakpointRefs++
			if lk.sheet.HasClass(ref.Class) {
				continue
			}
			issue := newIssue(ref, gen.SeverityError, fmt.Sprintf(gen.IssueUnknownBreakpoint, ref.Class, sheetName))
			if suggestion := lk.suggestBreakpoint(ref); suggestion != "" && suggestion != ref.Class {
				issue.Replacement = &gen.Replacement{
					NewText:      suggestion,
					InlineLength: len(ref.Class),
				}
			}
			result.Issues = append(result.Issues, issue)
			result.ErrorCount++

		case RefHardcoded:
			key, ok := lk.valueToKey[ref.Value]
			if !ok {
				continue
			}
			result.HardcodedRefs++
			issue := newIssue(ref, gen.SeverityWarning, fmt.Sprintf(gen.IssueHardcodedClamp, ref.Value, key))
			issue.Replacement = &gen.Replacement{
				NewText:      key,
				InlineLength: len(ref.Value),
			}
			result.Issues = append(result.Issues, issue)
			result.WarningCount++
		}
	}

	return result
}

func newIssue(ref ClassReference, severity, text string) gen.Issue {
	filename := ref.Location.File
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}
	return gen.Issue{
		FromLinter:  gen.LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: gen.IssuePos{
			Filename: filename,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
}

// nearestToken returns the generated token of the same unit closest in value
func (lk *lookup) nearestToken(token string) string {
	if len(token) < 2 {
		return ""
	}
	unit := gen.Unit(token[len(token)-2:])
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(token, "clamp-"), string(unit)), 64)
	if err != nil {
		return ""
	}

	best, bestDiff := "", math.Inf(1)
	for _, p := range lk.grid[unit] {
		if d := math.Abs(p.value - n); d < bestDiff {
			best, bestDiff = p.key, d
		}
	}
	return best
}

// suggestBreakpoint returns the class generated for the reference's width,
// correcting a misspelled utility prefix first
func (lk *lookup) suggestBreakpoint(ref ClassReference) string {
	prefix := ref.Prefix
	if !slices.Contains(lk.prefixes, prefix) {
		matches := fuzzy.Find(prefix, lk.prefixes)
		if len(matches) == 0 {
			return ""
		}
		prefix = matches[0].Str
	}

	bp, ok := lk.breakpoints[ref.VW]
	if !ok {
		return ""
	}

	negative := ""
	if strings.HasPrefix(ref.Class, "-") {
		negative = "-"
	}
	return negative + bp.PlainClassName(prefix)
}

// limitIssues applies max-issues-per-linter and max-same-issues
func limitIssues(issues []gen.Issue, config LintConfig) ([]gen.Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []gen.Issue, maxSame int) []gen.Issue {
	messageCounts := make(map[string]int)
	var filtered []gen.Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
