package clampgen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// RefKind classifies a clamp reference found in source.
type RefKind int

const (
	// RefToken is a theme token utility: p-clamp-2.5vh
	RefToken RefKind = iota
	// RefBreakpoint is a generated breakpoint class: top-clamp-7.5vw-7.1vh
	RefBreakpoint
	// RefHardcoded is a literal clamp(0rem, ...) expression
	RefHardcoded
)

// ClassReference represents a clamp class or expression found in a file
type ClassReference struct {
	Kind     RefKind
	Class    string       // class without variants: "-mt-clamp-3vh"
	Prefix   string       // utility prefix: "mt"
	Token    string       // theme key: "clamp-3vh"
	VW       string       // breakpoint width: "7.5"
	VH       string       // breakpoint height: "7.1"
	Value    string       // normalized clamp() for RefHardcoded
	Location FileLocation // Where it was found
}

// FileLocation tracks where a reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (start of the class or expression)
	Text   string // Trimmed line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// classToken splits a line into class-like words.
	classToken = regexp.MustCompile("[^\\s\"'`{}(),;<>=]+")

	// clampClass matches a class once variants (md:, hover:) are stripped.
	clampClass = regexp.MustCompile(`^(-?)([a-z][a-z0-9-]*?)-(clamp-(\d+(?:\.\d+)?)(vh|vw))(?:-(\d+(?:\.\d+)?)vh)?$`)

	// clampExpr matches a literal clamp() in the generated token shape.
	clampExpr = regexp.MustCompile(`clamp\(\s*0rem\s*,\s*(\d+(?:\.\d+)?)(vh|vw)\s*,\s*(\d+(?:\.\d+)?)rem\s*\)`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether path is excluded by the project .gitignore.
// Absolute paths (like /tmp/...) are outside the project and never skipped.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanFiles scans files matching the given patterns for clamp references
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatternsWithStats(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal
			stats.FilesSkipped++
			stats.FilesScanned--
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatternsWithStats expands globs, drops directories and
// duplicates, and tracks statistics
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for clamp references
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from configured content globs
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractReferencesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractReferencesFromLine finds clamp classes and literal clamp()
// expressions in one line
func extractReferencesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}
	if !strings.Contains(line, "clamp") {
		return nil
	}

	text := strings.TrimSpace(line)
	location := func(offset int) FileLocation {
		return FileLocation{File: file, Line: lineNum, Column: offset + 1, Text: text}
	}

	var refs []ClassReference

	for _, span := range classToken.FindAllStringIndex(line, -1) {
		word := line[span[0]:span[1]]
		if !strings.Contains(word, "-clamp-") {
			continue
		}

		// Strip variants (md:, hover:, [&>*]:) and the important modifier
		class := word
		if i := strings.LastIndex(class, ":"); i >= 0 {
			class = class[i+1:]
		}
		class = strings.TrimPrefix(class, "!")

		m := clampClass.FindStringSubmatch(class)
		if m == nil {
			continue
		}

		ref := ClassReference{
			Class:    class,
			Prefix:   m[2],
			Token:    m[3],
			Location: location(span[0] + strings.Index(word, class)),
		}
		if m[6] != "" {
			if m[5] != "vw" {
				continue
			}
			ref.Kind = RefBreakpoint
			ref.VW = m[4]
			ref.VH = m[6]
		} else {
			ref.Kind = RefToken
		}
		refs = append(refs, ref)
	}

	for _, match := range clampExpr.FindAllStringSubmatchIndex(line, -1) {
		value := "clamp(0rem, " + line[match[2]:match[3]] + line[match[4]:match[5]] +
			", " + line[match[6]:match[7]] + "rem)"
		refs = append(refs, ClassReference{
			Kind:     RefHardcoded,
			Value:    value,
			Location: location(match[0]),
		})
	}

	return refs
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
