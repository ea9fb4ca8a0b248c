package clampgen

import "fmt"

// Device is the design-time viewport the scale is tuned for.
type Device struct {
	Width   float64 `koanf:"width"`    // 768 (px)
	Height  float64 `koanf:"height"`   // 808 (px)
	RemBase float64 `koanf:"rem-base"` // 16 (px per rem)
}

// Factors holds the unit conversions derived from a Device.
type Factors struct {
	VWInPixels float64 // px per 1vw
	VHInPixels float64 // px per 1vh
	VWInRem    float64 // rem per 1vw
	VHInRem    float64 // rem per 1vh
}

// Factors computes the conversion factors.
// The arithmetic runs in float64 at runtime; constant folding would round
// differently and shift values in the third decimal.
func (d Device) Factors() Factors {
	vhInPixels := d.Height * 0.01
	vwInPixels := d.Width * 0.01
	return Factors{
		VWInPixels: vwInPixels,
		VHInPixels: vhInPixels,
		VWInRem:    vwInPixels / d.RemBase,
		VHInRem:    vhInPixels / d.RemBase,
	}
}

// Unit is a viewport length unit.
type Unit string

// Supported viewport units.
const (
	UnitVH Unit = "vh"
	UnitVW Unit = "vw"
)

// RemFactor returns the rem-per-unit factor for u.
func (f Factors) RemFactor(u Unit) (float64, error) {
	switch u {
	case UnitVH:
		return f.VHInRem, nil
	case UnitVW:
		return f.VWInRem, nil
	}
	return 0, fmt.Errorf("unknown unit %q (want vh or vw)", u)
}

// SpacingRange describes one sweep of clamp tokens.
type SpacingRange struct {
	Min  float64 `koanf:"min"`
	Max  float64 `koanf:"max"`
	Step float64 `koanf:"step"`
	Unit Unit    `koanf:"unit"`
}

// Property maps a utility class prefix to the CSS property it sets.
type Property struct {
	Prefix string // "ml"
	CSS    string // "margin-left"
}

// DefaultDevice is the reference tablet layout.
func DefaultDevice() Device {
	return Device{Width: 768, Height: 808, RemBase: 16}
}

// DefaultSpacingRanges returns the sweeps in merge order. The pinned 2.92vw
// and 3.33vw entries fall between the 0.1 steps of the vw sweep, so nothing
// collides and the merged map holds 4004 tokens.
func DefaultSpacingRanges() []SpacingRange {
	return []SpacingRange{
		{Min: 0, Max: 200, Step: 0.1, Unit: UnitVH},
		{Min: 2.92, Max: 2.92, Step: 0.1, Unit: UnitVW},
		{Min: 0, Max: 200, Step: 0.1, Unit: UnitVW},
		{Min: 3.33, Max: 3.33, Step: 0.1, Unit: UnitVW},
	}
}

// DefaultBreakpoints returns the curated viewport-width breakpoints.
func DefaultBreakpoints() []float64 {
	return []float64{
		0.3, 0.5, 0.6, 0.7, 0.9, 1, 1.2, 1.3, 1.4, 1.6, 1.8, 2.4, 3, 3.4, 3.6, 4, 4.5,
		5.3, 5.4, 5.5, 5.8, 5.9, 6, 6.8, 6.9, 7, 7.3, 7.5, 8, 8.2, 8.3, 8.5, 8.6, 8.8,
		9.8, 10.2, 11, 12, 12.2, 12.5, 13, 15, 16, 17, 17.7, 18.3, 19.5, 20, 21, 22,
		22.2, 22.5, 25, 27.7, 30.7, 32, 35, 37, 37.5, 37.7, 40, 40.8, 41.5, 42.5,
		43.8, 44.8, 45.5, 46.5, 47, 50, 51.5, 55, 57.2, 64.7, 70, 71.5, 72, 81.5, 84,
		92.3,
	}
}

// Properties is the fixed set of utilities that get breakpoint classes.
var Properties = []Property{
	{Prefix: "top", CSS: "top"},
	{Prefix: "bottom", CSS: "bottom"},
	{Prefix: "left", CSS: "left"},
	{Prefix: "right", CSS: "right"},
	{Prefix: "text", CSS: "font-size"},
	{Prefix: "w", CSS: "width"},
	{Prefix: "mt", CSS: "margin-top"},
	{Prefix: "ml", CSS: "margin-left"},
	{Prefix: "leading", CSS: "line-height"},
	{Prefix: "tracking", CSS: "letter-spacing"},
}
