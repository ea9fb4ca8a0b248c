package clampgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfigModule(t *testing.T) {
	spacing := NewTokenMap(2)
	spacing.Set("clamp-0vh", "clamp(0rem, 0vh, 0rem)")
	spacing.Set("clamp-1vh", "clamp(0rem, 1vh, 0.505rem)")

	out, err := RenderConfigModule(BuildTailwindConfig(DefaultContent, spacing))
	require.NoError(t, err)

	wantPrefix := "/** @type {import('tailwindcss').Config} */\n\n" +
		"export default {\n" +
		"  \"content\": [\n" +
		"    \"./src/**/*.{astro,html,js,jsx,md,mdx,svelte,ts,tsx,vue}\"\n" +
		"  ],\n" +
		"  \"theme\": {\n" +
		"    \"extend\": {\n" +
		"      \"spacing\": {\n" +
		"        \"clamp-0vh\": \"clamp(0rem, 0vh, 0rem)\",\n" +
		"        \"clamp-1vh\": \"clamp(0rem, 1vh, 0.505rem)\"\n" +
		"      },\n" +
		"      \"fontSize\": {\n"
	require.True(t, strings.HasPrefix(out, wantPrefix), "unexpected module head:\n%s", out)

	assert.True(t, strings.HasSuffix(out, "\n  \"plugins\": []\n};"), "module must end with '};' and no newline")

	// Categories in order, then the static theme entries
	last := -1
	for _, key := range append(append([]string{}, SpacingCategories...), "fontFamily", "backgroundImage", "animation", "keyframes") {
		idx := strings.Index(out, "      \""+key+"\": {")
		require.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}

	assert.Equal(t, len(SpacingCategories), strings.Count(out, "\"clamp-1vh\": \"clamp(0rem, 1vh, 0.505rem)\""))
	assert.Less(t, strings.Index(out, "\"0%\""), strings.Index(out, "\"to\""))
	assert.Contains(t, out, "\"KleeOneRegular\": [\n          \"KleeOne Regular\"\n        ]")
	assert.Contains(t, out, "\"slide-in-tl\": \"slide-in-tl 0.5s cubic-bezier(0.250, 0.460, 0.450, 0.940) both\"")
	assert.Contains(t, out, "transparent clamp(0rem, 10vw, 2.688rem))\"")
	assert.Contains(t, out, "\"transform\": \"translateY(1000px) translateX(1000px)\"")
}

func TestRenderConfigModuleEmptyInputs(t *testing.T) {
	out, err := RenderConfigModule(BuildTailwindConfig(nil, NewTokenMap(0)))
	require.NoError(t, err)

	assert.Contains(t, out, "\"content\": [],")
	assert.Contains(t, out, "\"spacing\": {},")
}

func TestWriteConfigModuleMatchesRender(t *testing.T) {
	config := BuildTailwindConfig(DefaultContent, NewTokenMap(0))

	var buf bytes.Buffer
	require.NoError(t, WriteConfigModule(&buf, config))

	rendered, err := RenderConfigModule(config)
	require.NoError(t, err)
	assert.Equal(t, rendered, buf.String())
}
