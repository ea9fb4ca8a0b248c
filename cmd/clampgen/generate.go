package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate tailwind.config.mjs and clamps.css",
	Long: `Build clamp-{n}vh / clamp-{n}vw spacing tokens into tailwind.config.mjs and
write the paired min/max breakpoint classes to clamps.css.
Both files are overwritten; their parent directories must exist.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Float64("device-width", 768, "Design device width in px")
	f.Float64("device-height", 808, "Design device height in px")
	f.Float64("rem-base", 16, "Root font size in px")
	f.String("config-out", clampgen.DefaultConfigOut, "Tailwind config output path")
	f.String("stylesheet-out", clampgen.DefaultStylesheetOut, "Breakpoint stylesheet output path")
	f.StringSlice("breakpoints", nil, "Viewport-width breakpoints (comma-separated)")
	f.StringSlice("content", nil, "Tailwind content globs")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	result, err := clampgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if config.Verbose && !config.Quiet {
		fmt.Printf("Generated %d tokens and %d breakpoint classes\n",
			result.TokensGenerated, result.ClassesDefined)
	}

	// Run lint after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint(config)
	}

	return nil
}
