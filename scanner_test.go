package clampgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReferencesFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []ClassReference
	}{
		{
			name: "token classes with variant",
			line: `<div class="p-clamp-2.5vh md:mt-clamp-10vw">`,
			want: []ClassReference{
				{Kind: RefToken, Class: "p-clamp-2.5vh", Prefix: "p", Token: "clamp-2.5vh", Location: FileLocation{Column: 13}},
				{Kind: RefToken, Class: "mt-clamp-10vw", Prefix: "mt", Token: "clamp-10vw", Location: FileLocation{Column: 30}},
			},
		},
		{
			name: "negative breakpoint class",
			line: `<span class="-top-clamp-7.5vw-7.1vh">`,
			want: []ClassReference{
				{Kind: RefBreakpoint, Class: "-top-clamp-7.5vw-7.1vh", Prefix: "top", Token: "clamp-7.5vw", VW: "7.5", VH: "7.1", Location: FileLocation{Column: 14}},
			},
		},
		{
			name: "important modifier",
			line: `class="hover:!w-clamp-3vw"`,
			want: []ClassReference{
				{Kind: RefToken, Class: "w-clamp-3vw", Prefix: "w", Token: "clamp-3vw", Location: FileLocation{Column: 15}},
			},
		},
		{
			name: "hardcoded clamp",
			line: `style="top: clamp(0rem,1vh,  0.505rem)"`,
			want: []ClassReference{
				{Kind: RefHardcoded, Value: "clamp(0rem, 1vh, 0.505rem)", Location: FileLocation{Column: 13}},
			},
		},
		{
			name: "vh base with pairing is ignored",
			line: `class="top-clamp-7vh-7vh"`,
			want: nil,
		},
		{
			name: "line comment",
			line: `  // p-clamp-1vh`,
			want: nil,
		},
		{
			name: "no clamp",
			line: `<div class="p-4">`,
			want: nil,
		},
		{
			name: "malformed token",
			line: `class="p-clamp-abc"`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractReferencesFromLine(tt.line, 7, "page.astro")
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				want := tt.want[i]
				want.Location.File = "page.astro"
				want.Location.Line = 7
				want.Location.Text = tt.line
				assert.Equal(t, want, got[i])
			}
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pages"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "pages", "index.astro"),
		[]byte("<main>\n  <h1 class=\"text-clamp-4vh\">Hi</h1>\n</main>\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "notes.txt"),
		[]byte("p-clamp-1vh\n"), 0644))

	refs, stats, err := ScanFiles([]string{
		filepath.Join(dir, "src", "**", "*.astro"),
		filepath.Join(dir, "src", "**", "*.{astro,html}"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesDiscovered, "duplicates across patterns are scanned once")
	assert.Equal(t, 1, stats.FilesScanned)
	require.Len(t, refs, 1)
	assert.Equal(t, "clamp-4vh", refs[0].Token)
	assert.Equal(t, 2, refs[0].Location.Line)
	assert.Equal(t, 14, refs[0].Location.Column)
}

func TestScanFilesBadPattern(t *testing.T) {
	_, _, err := ScanFiles([]string{"src/[.astro"})
	require.Error(t, err)
}
