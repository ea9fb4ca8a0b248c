package clampgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Breakpoint is one viewport-width breakpoint and its paired viewport height.
type Breakpoint struct {
	VW  string // formatted width, "7.5"
	VH  string // paired height to one decimal, "7.1"
	Rem string // rem ceiling to three decimals, "3.600"
}

// PairBreakpoint computes the height breakpoint that expresses the same rem
// size as vw. The rem value is rounded to three places before the division,
// matching the value written into the rules.
func PairBreakpoint(vw, vwInRem, vhInRem float64) Breakpoint {
	rem := ToFixed(vw*vwInRem, 3)
	remValue, _ := strconv.ParseFloat(rem, 64)
	return Breakpoint{
		VW:  FormatNumber(vw),
		VH:  ToFixed(remValue/vhInRem, 1),
		Rem: rem,
	}
}

// ClassName returns the selector name for prefix, without the leading dot.
// The first decimal point of each number is escaped.
func (b Breakpoint) ClassName(prefix string) string {
	return prefix + "-clamp-" + escapeDot(b.VW) + "vw-" + escapeDot(b.VH) + "vh"
}

// PlainClassName returns the class name as written in markup.
func (b Breakpoint) PlainClassName(prefix string) string {
	return prefix + "-clamp-" + b.VW + "vw-" + b.VH + "vh"
}

func escapeDot(s string) string {
	return strings.Replace(s, ".", `\.`, 1)
}

const mediaQueryTemplate = `
@media (min-width: %[1]svw) and (min-height: %[2]svh) {
  .%[3]s {
    %[4]s: clamp(0rem, %[2]svh, %[5]srem);
  }
  .-%[3]s {
    %[4]s: calc(clamp(0rem, %[2]svh, %[5]srem) * -1);
  }
}
@media (max-width: %[1]svw) and (max-height: %[2]svh) {
  .%[3]s {
    %[4]s: clamp(0rem, %[1]svw, %[5]srem);
  }
  .-%[3]s {
    %[4]s: calc(clamp(0rem, %[1]svw, %[5]srem) * -1);
  }
}`

// GenerateSingleMediaQuery emits the min and max media blocks for every
// property at one breakpoint. Above the breakpoint the value tracks the
// viewport height, below it tracks the width. Both are capped at the same
// rem size.
func GenerateSingleMediaQuery(vw, vwInRem, vhInRem float64) string {
	var b strings.Builder
	writeMediaQuery(&b, vw, vwInRem, vhInRem)
	return b.String()
}

func writeMediaQuery(b *strings.Builder, vw, vwInRem, vhInRem float64) {
	bp := PairBreakpoint(vw, vwInRem, vhInRem)
	for _, p := range Properties {
		fmt.Fprintf(b, mediaQueryTemplate, bp.VW, bp.VH, bp.ClassName(p.Prefix), p.CSS, bp.Rem)
	}
}

// GenerateMediaQueriesForValues concatenates the media blocks of every
// breakpoint in list order with no separator.
func GenerateMediaQueriesForValues(values []float64, vwInRem, vhInRem float64) string {
	var b strings.Builder
	for _, vw := range values {
		writeMediaQuery(&b, vw, vwInRem, vhInRem)
	}
	return b.String()
}
