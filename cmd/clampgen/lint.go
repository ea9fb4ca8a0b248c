package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

// errLintFailed signals a failing lint run whose report was already printed.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check clamp classes used in project sources",
	Long: `Scan the Tailwind content globs for clamp token and breakpoint classes.
Unknown tokens and breakpoint classes missing from clamps.css are errors;
literal clamp() expressions that match a token are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config, err := buildGenerateConfig()
		if err != nil {
			return err
		}
		return runLint(config)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan (default: Tailwind content globs)")
	f.String("stylesheet", "", "Generated stylesheet to check against (default: generate.stylesheet-out)")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (clamplint) suffix on issues")
}

// runLint is shared between `clampgen lint` and `clampgen generate --lint`.
func runLint(generate clampgen.Config) error {
	lintConfig := buildLintConfig(generate)

	result, err := clampgen.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := gen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		gen.WriteOutput(os.Stdout, result, format, buildReportConfig())
	}

	if lintConfig.Failed(result) {
		return errLintFailed
	}
	return nil
}
