package clampgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

// GenerateResult contains generation stats
type GenerateResult struct {
	ConfigPath      string
	StylesheetPath  string
	TokensGenerated int // keys in the merged spacing map
	TokenCollisions int // keys a later range overwrote
	Breakpoints     int
	MediaBlocks     int // @media blocks in the stylesheet
	ClassesDefined  int // distinct selectors in the stylesheet
	ConfigBytes     int
	StylesheetBytes int
}

// Generate is the main entry point. It writes the Tailwind config first and
// the breakpoint stylesheet second; an error from either write aborts the run
// and leaves whatever was already written in place.
func Generate(config Config) (*GenerateResult, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}

	result := &GenerateResult{
		ConfigPath:     config.ConfigOut,
		StylesheetPath: config.StylesheetOut,
		Breakpoints:    len(config.Breakpoints),
	}

	// 1. Conversion factors
	factors := config.Device.Factors()
	if config.Verbose {
		fmt.Fprintf(out, "1vw = %srem, 1vh = %srem (device %vx%v, root %vpx)\n",
			gen.ToFixed(factors.VWInRem, 4), gen.ToFixed(factors.VHInRem, 4),
			config.Device.Width, config.Device.Height, config.Device.RemBase)
	}

	// 2. Spacing tokens
	spacing, collisions, err := gen.GenerateSpacing(config.Spacing, factors)
	if err != nil {
		return nil, fmt.Errorf("spacing failed: %w", err)
	}
	result.TokensGenerated = spacing.Len()
	result.TokenCollisions = collisions

	// 3. Tailwind config module
	module, err := gen.RenderConfigModule(gen.BuildTailwindConfig(config.Content, spacing))
	if err != nil {
		return nil, fmt.Errorf("render config failed: %w", err)
	}
	if err := writeOutput(config.ConfigOut, module); err != nil {
		return nil, err
	}
	result.ConfigBytes = len(module)
	reportWrite(out, config, config.ConfigOut, len(module))
	if config.Verbose {
		fmt.Fprintf(out, "  Tokens: %d (%d overwritten)\n", result.TokensGenerated, result.TokenCollisions)
	}

	// 4. Breakpoint stylesheet
	stylesheet := gen.GenerateMediaQueriesForValues(config.Breakpoints, factors.VWInRem, factors.VHInRem)
	if err := writeOutput(config.StylesheetOut, stylesheet); err != nil {
		return nil, err
	}
	result.StylesheetBytes = len(stylesheet)
	reportWrite(out, config, config.StylesheetOut, len(stylesheet))

	// 5. Read back what we wrote
	sheet, err := gen.ParseStylesheetFile(config.StylesheetOut)
	if err != nil {
		return nil, fmt.Errorf("verify stylesheet failed: %w", err)
	}
	result.MediaBlocks = sheet.MediaBlocks
	result.ClassesDefined = len(sheet.Classes)
	if config.Verbose {
		fmt.Fprintf(out, "  Breakpoints: %d, media blocks: %d (%d min / %d max), classes: %d\n",
			result.Breakpoints, sheet.MediaBlocks, sheet.MinBlocks, sheet.MaxBlocks, result.ClassesDefined)
	}

	return result, nil
}

// writeOutput overwrites path. The parent directory must already exist.
func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func reportWrite(out io.Writer, config Config, path string, size int) {
	if config.Quiet {
		return
	}
	useColors := config.UseColors
	msg := gen.RenderStyle(gen.StyleGreen, filepath.Base(path)+" has been generated!", useColors)
	if config.Verbose {
		msg += gen.RenderStyle(gen.StyleGray, " ("+humanize.Bytes(uint64(size))+")", useColors)
	}
	fmt.Fprintln(out, msg)
}
