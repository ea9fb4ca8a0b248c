package clampgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairBreakpoint(t *testing.T) {
	f := DefaultDevice().Factors()

	tests := []struct {
		vw   float64
		want Breakpoint
	}{
		{vw: 0.3, want: Breakpoint{VW: "0.3", VH: "0.3", Rem: "0.144"}},
		{vw: 1, want: Breakpoint{VW: "1", VH: "1.0", Rem: "0.480"}},
		{vw: 7.5, want: Breakpoint{VW: "7.5", VH: "7.1", Rem: "3.600"}},
		{vw: 12, want: Breakpoint{VW: "12", VH: "11.4", Rem: "5.760"}},
		{vw: 92.3, want: Breakpoint{VW: "92.3", VH: "87.7", Rem: "44.304"}},
	}

	for _, tt := range tests {
		t.Run(tt.want.VW, func(t *testing.T) {
			require.Equal(t, tt.want, PairBreakpoint(tt.vw, f.VWInRem, f.VHInRem))
		})
	}
}

func TestBreakpointClassName(t *testing.T) {
	bp := Breakpoint{VW: "7.5", VH: "7.1", Rem: "3.600"}
	assert.Equal(t, `top-clamp-7\.5vw-7\.1vh`, bp.ClassName("top"))
	assert.Equal(t, "top-clamp-7.5vw-7.1vh", bp.PlainClassName("top"))

	bp = Breakpoint{VW: "12", VH: "11.4", Rem: "5.760"}
	assert.Equal(t, `w-clamp-12vw-11\.4vh`, bp.ClassName("w"))
}

func TestGenerateSingleMediaQuery(t *testing.T) {
	f := DefaultDevice().Factors()
	css := GenerateSingleMediaQuery(7.5, f.VWInRem, f.VHInRem)

	want := "\n@media (min-width: 7.5vw) and (min-height: 7.1vh) {\n" +
		"  .top-clamp-7\\.5vw-7\\.1vh {\n" +
		"    top: clamp(0rem, 7.1vh, 3.600rem);\n" +
		"  }\n" +
		"  .-top-clamp-7\\.5vw-7\\.1vh {\n" +
		"    top: calc(clamp(0rem, 7.1vh, 3.600rem) * -1);\n" +
		"  }\n" +
		"}\n" +
		"@media (max-width: 7.5vw) and (max-height: 7.1vh) {\n" +
		"  .top-clamp-7\\.5vw-7\\.1vh {\n" +
		"    top: clamp(0rem, 7.5vw, 3.600rem);\n" +
		"  }\n" +
		"  .-top-clamp-7\\.5vw-7\\.1vh {\n" +
		"    top: calc(clamp(0rem, 7.5vw, 3.600rem) * -1);\n" +
		"  }\n" +
		"}"
	require.True(t, strings.HasPrefix(css, want), "first property block mismatch:\n%s", css[:len(want)])

	assert.Equal(t, 10, strings.Count(css, "@media (min-width: 7.5vw)"))
	assert.Equal(t, 10, strings.Count(css, "@media (max-width: 7.5vw)"))
	assert.Contains(t, css, "font-size: clamp(0rem, 7.1vh, 3.600rem);")
	assert.Contains(t, css, ".-tracking-clamp-7\\.5vw-7\\.1vh {\n    letter-spacing: calc(")
	assert.True(t, strings.HasSuffix(css, "}"))
}

func TestGenerateMediaQueriesForValues(t *testing.T) {
	f := DefaultDevice().Factors()

	t.Run("concatenated in list order", func(t *testing.T) {
		css := GenerateMediaQueriesForValues([]float64{1, 0.3}, f.VWInRem, f.VHInRem)
		assert.Equal(t,
			GenerateSingleMediaQuery(1, f.VWInRem, f.VHInRem)+GenerateSingleMediaQuery(0.3, f.VWInRem, f.VHInRem),
			css)
		assert.Less(t, strings.Index(css, "1vw"), strings.Index(css, "0.3vw"))
	})

	t.Run("default breakpoints", func(t *testing.T) {
		css := GenerateMediaQueriesForValues(DefaultBreakpoints(), f.VWInRem, f.VHInRem)
		assert.Equal(t, 1600, strings.Count(css, "@media"))
		assert.True(t, strings.HasPrefix(css, "\n@media (min-width: 0.3vw) and (min-height: 0.3vh) {"))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, GenerateMediaQueriesForValues(nil, f.VWInRem, f.VHInRem))
	})
}
