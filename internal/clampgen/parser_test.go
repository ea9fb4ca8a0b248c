package clampgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheetGenerated(t *testing.T) {
	f := DefaultDevice().Factors()
	css := GenerateMediaQueriesForValues(DefaultBreakpoints(), f.VWInRem, f.VHInRem)

	sheet, err := ParseStylesheet(css)
	require.NoError(t, err)

	assert.Equal(t, 1600, sheet.MediaBlocks)
	assert.Equal(t, 800, sheet.MinBlocks)
	assert.Equal(t, 800, sheet.MaxBlocks)
	assert.Equal(t, 3200, sheet.Rules)
	assert.Len(t, sheet.Classes, 1600)

	assert.True(t, sheet.HasClass("top-clamp-7.5vw-7.1vh"))
	assert.True(t, sheet.HasClass("-top-clamp-7.5vw-7.1vh"))
	assert.True(t, sheet.HasClass("tracking-clamp-92.3vw-87.7vh"))
	assert.True(t, sheet.HasClass("w-clamp-12vw-11.4vh"))
	assert.False(t, sheet.HasClass("top-clamp-7.5vw-7.2vh"))

	assert.Equal(t, "top-clamp-0.3vw-0.3vh", sheet.Order[0])
	assert.Equal(t, "-top-clamp-0.3vw-0.3vh", sheet.Order[1])
}

func TestParseStylesheetHandwritten(t *testing.T) {
	css := `
/* comment .not-a-class { } */
@import url("base.css");
.btn, .btn--primary:hover { color: red; }
#id .card > .card__title { margin: 0 }
@media (max-width: 40em) {
  .hidden-sm { display: none; }
}
.a\:b { width: 1px }
`
	sheet, err := ParseStylesheet(css)
	require.NoError(t, err)

	assert.Equal(t, 1, sheet.MediaBlocks)
	assert.Equal(t, 1, sheet.MaxBlocks)
	assert.Equal(t, 0, sheet.MinBlocks)
	assert.Equal(t, 4, sheet.Rules)
	assert.Equal(t, []string{"btn", "btn--primary", "card", "card__title", "hidden-sm", "a:b"}, sheet.Order)
	assert.False(t, sheet.HasClass("not-a-class"))
}

func TestParseStylesheetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clamps.css")
	require.NoError(t, os.WriteFile(path, []byte(".x { top: 0 }"), 0644))

	sheet, err := ParseStylesheetFile(path)
	require.NoError(t, err)
	assert.True(t, sheet.HasClass("x"))

	_, err = ParseStylesheetFile(filepath.Join(dir, "missing.css"))
	require.Error(t, err)
}

func TestUnescapeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `7\.5`, want: "7.5"},
		{in: `top-clamp-7\.5vw-7\.1vh`, want: "top-clamp-7.5vw-7.1vh"},
		{in: `\31 0`, want: "10"},
		{in: `md\:p-4`, want: "md:p-4"},
		{in: `trailing\`, want: `trailing\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, UnescapeIdent(tt.in))
		})
	}
}
