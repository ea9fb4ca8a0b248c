package clampgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ConfigHeader is the type hint that opens the generated config module.
const ConfigHeader = "/** @type {import('tailwindcss').Config} */\n\n"

// DefaultContent is the Tailwind content glob of an Astro project.
var DefaultContent = []string{"./src/**/*.{astro,html,js,jsx,md,mdx,svelte,ts,tsx,vue}"}

// SpacingCategories are the theme.extend keys that receive the merged
// spacing tokens, in output order.
var SpacingCategories = []string{
	"spacing",
	"fontSize",
	"letterSpacing",
	"margin",
	"padding",
	"gap",
	"width",
	"height",
	"borderWidth",
	"lineHeight",
	"borderRadius",
}

// BuildTailwindConfig assembles the config object around the merged spacing
// tokens. Static theme entries (fonts, the dashed-line background and the
// slide-in animation) are fixed.
func BuildTailwindConfig(content []string, spacing *TokenMap) *Object {
	if content == nil {
		content = []string{}
	}

	extend := NewObject()
	for _, category := range SpacingCategories {
		extend.Set(category, spacing)
	}
	extend.Set("fontFamily", NewObject().
		Set("KleeOneRegular", []string{"KleeOne Regular"}).
		Set("KleeOneSemiBold", []string{"KleeOne SemiBold"}))
	extend.Set("backgroundImage", NewObject().
		Set("dashed-line", "repeating-linear-gradient(to right,black,black clamp(0rem, 6vw, 1.612rem),transparent clamp(0rem, 6vw, 1.612rem),transparent clamp(0rem, 10vw, 2.688rem))"))
	extend.Set("animation", NewObject().
		Set("slide-in-tl", "slide-in-tl 0.5s cubic-bezier(0.250, 0.460, 0.450, 0.940) both"))
	extend.Set("keyframes", NewObject().
		Set("slide-in-tl", NewObject().
			Set("0%", NewObject().
				Set("transform", "translateY(1000px) translateX(1000px)").
				Set("opacity", "0")).
			Set("to", NewObject().
				Set("transform", "translateY(0) translateX(0)").
				Set("opacity", "1"))))

	return NewObject().
		Set("content", content).
		Set("theme", NewObject().Set("extend", extend)).
		Set("plugins", []string{})
}

// WriteConfigModule serializes config as an ES module default export with
// two-space indentation and no trailing newline.
func WriteConfigModule(w io.Writer, config *Object) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if _, err := io.WriteString(w, ConfigHeader+"export default "); err != nil {
		return err
	}
	if _, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return err
	}
	_, err := io.WriteString(w, ";")
	return err
}

// RenderConfigModule returns the config module as a string.
func RenderConfigModule(config *Object) (string, error) {
	var buf bytes.Buffer
	if err := WriteConfigModule(&buf, config); err != nil {
		return "", err
	}
	return buf.String(), nil
}
