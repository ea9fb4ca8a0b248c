package clampgen

import (
	"errors"
	"fmt"
	"io"

	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

// Default output paths, relative to the project root.
const (
	DefaultConfigOut     = "tailwind.config.mjs"
	DefaultStylesheetOut = "src/styles/clamps.css"
)

// Config holds generator configuration
type Config struct {
	Device        gen.Device         // Design-time viewport and root font size
	Spacing       []gen.SpacingRange // Token sweeps, merged in order (later wins)
	Breakpoints   []float64          // Viewport-width breakpoints for clamps.css
	Content       []string           // Tailwind content globs (also scanned by lint)
	ConfigOut     string             // "tailwind.config.mjs"
	StylesheetOut string             // "src/styles/clamps.css"
	Verbose       bool               // Print stats after each write
	Quiet         bool               // Suppress completion messages
	UseColors     bool               // Force colored messages
	Stdout        io.Writer          // Destination for messages (default: os.Stdout)
}

// DefaultConfig returns the configuration that reproduces the reference
// tailwind.config.mjs and clamps.css byte for byte.
func DefaultConfig() Config {
	return Config{
		Device:        gen.DefaultDevice(),
		Spacing:       gen.DefaultSpacingRanges(),
		Breakpoints:   gen.DefaultBreakpoints(),
		Content:       append([]string(nil), gen.DefaultContent...),
		ConfigOut:     DefaultConfigOut,
		StylesheetOut: DefaultStylesheetOut,
	}
}

// minStep is the smallest step the two-decimal rounding keeps as given.
// Smaller steps either round up to 0.01 (0.007) or stall partway through the
// sweep (0.005 stops at 0.03).
const minStep = 0.01

// Validate reports every problem with the numeric parameters at once.
func (c Config) Validate() error {
	var errs []error

	if c.Device.Width <= 0 {
		errs = append(errs, fmt.Errorf("device width must be positive, got %v", c.Device.Width))
	}
	if c.Device.Height <= 0 {
		errs = append(errs, fmt.Errorf("device height must be positive, got %v", c.Device.Height))
	}
	if c.Device.RemBase <= 0 {
		errs = append(errs, fmt.Errorf("rem base must be positive, got %v", c.Device.RemBase))
	}

	for i, r := range c.Spacing {
		if r.Unit != gen.UnitVH && r.Unit != gen.UnitVW {
			errs = append(errs, fmt.Errorf("spacing[%d]: unit must be vh or vw, got %q", i, r.Unit))
		}
		if r.Step < minStep {
			errs = append(errs, fmt.Errorf("spacing[%d]: step must be at least %v, got %v", i, minStep, r.Step))
		}
	}

	if len(c.Breakpoints) == 0 {
		errs = append(errs, errors.New("at least one breakpoint is required"))
	}
	for i, bp := range c.Breakpoints {
		if bp <= 0 {
			errs = append(errs, fmt.Errorf("breakpoints[%d]: must be positive, got %v", i, bp))
		}
	}

	if c.ConfigOut == "" {
		errs = append(errs, errors.New("config output path is empty"))
	}
	if c.StylesheetOut == "" {
		errs = append(errs, errors.New("stylesheet output path is empty"))
	}

	return errors.Join(errs...)
}
