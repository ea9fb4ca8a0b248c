// Package clampgen generates fluid clamp() spacing tokens for Tailwind CSS and
// the paired breakpoint stylesheet that goes with them.
//
// All values are tuned to one design device. A length of n vw or n vh is
// capped at the rem size it has on that device, so layouts scale down with
// the viewport but never grow past the design.
//
// # Generation
//
// Write tailwind.config.mjs and src/styles/clamps.css:
//
//	config := clampgen.DefaultConfig()
//	result, err := clampgen.Generate(config)
//
// The defaults reproduce the reference output byte for byte: 4004 spacing
// tokens merged into eleven theme categories and 1600 @media blocks for 80
// breakpoints.
//
// # Linting
//
// Check clamp classes used in project sources against the generated output:
//
//	result, err := clampgen.Lint(clampgen.LintConfig{
//		StylesheetPath: config.StylesheetOut,
//		Generate:       config,
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/clampgen/cmd/clampgen@latest
package clampgen
