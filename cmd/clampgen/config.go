package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/clampgen"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

const defaultConfigPath = ".clampgen.yaml"

var k = koanf.New(".")

// envKeys maps CLAMPGEN_GENERATE_DEVICE_REM__BASE to generate.device.rem-base.
var envKeys = strings.NewReplacer("__", "-", "_", ".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	if err := loadConfigFromPath(configPathFlag(cmd)); err != nil {
		return err
	}

	// CLI flags (highest precedence). Only flags the user actually set are
	// loaded, so flag defaults never shadow values from the file or env.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", nil, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

func configPathFlag(cmd *cobra.Command) string {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	return configPath
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		var parser koanf.Parser = yaml.Parser()
		if strings.EqualFold(filepath.Ext(configPath), ".toml") {
			parser = newTOMLParser()
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLAMPGEN_* prefix)
	if err := k.Load(env.Provider("CLAMPGEN_", ".", func(s string) string {
		// CLAMPGEN_GENERATE_CONFIG__OUT -> generate.config-out
		// CLAMPGEN_LINT_STRICT -> lint.strict
		// CLAMPGEN_VERBOSE -> verbose
		return envKeys.Replace(strings.ToLower(strings.TrimPrefix(s, "CLAMPGEN_")))
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (clampgen.Config, error) {
	defaults := clampgen.DefaultConfig()

	config := clampgen.Config{
		Device: gen.Device{
			Width:   getFloat64WithFallback("device-width", "generate.device.width", defaults.Device.Width),
			Height:  getFloat64WithFallback("device-height", "generate.device.height", defaults.Device.Height),
			RemBase: getFloat64WithFallback("rem-base", "generate.device.rem-base", defaults.Device.RemBase),
		},
		Spacing:       defaults.Spacing,
		Breakpoints:   defaults.Breakpoints,
		Content:       defaults.Content,
		ConfigOut:     getStringWithFallback("config-out", "generate.config-out", defaults.ConfigOut),
		StylesheetOut: getStringWithFallback("stylesheet-out", "generate.stylesheet-out", defaults.StylesheetOut),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
		Quiet:         getBoolWithFallback("quiet", "quiet", false),
		UseColors:     gen.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	}

	// Spacing sweeps are only configurable from the file or env
	if k.Exists("generate.spacing") {
		var ranges []gen.SpacingRange
		if err := k.Unmarshal("generate.spacing", &ranges); err != nil {
			return config, fmt.Errorf("parsing generate.spacing: %w", err)
		}
		config.Spacing = ranges
	}

	// Handle breakpoints: check flag key first, then config key
	if values := k.Strings("breakpoints"); len(values) > 0 {
		breakpoints, err := parseFloats(values)
		if err != nil {
			return config, fmt.Errorf("parsing --breakpoints: %w", err)
		}
		config.Breakpoints = breakpoints
	} else if values := k.Float64s("generate.breakpoints"); len(values) > 0 {
		config.Breakpoints = values
	}

	// Handle content: check flag key first, then config key
	if content := k.Strings("content"); len(content) > 0 {
		config.Content = content
	} else if content := k.Strings("generate.content"); len(content) > 0 {
		config.Content = content
	}

	return config, nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(generate clampgen.Config) clampgen.LintConfig {
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	}

	return clampgen.LintConfig{
		ScanPaths:          scanPaths,
		StylesheetPath:     getStringWithFallback("stylesheet", "lint.stylesheet", generate.StylesheetOut),
		Generate:           generate,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
	}
}

// buildReportConfig constructs reporter settings from koanf state.
func buildReportConfig() gen.ReportConfig {
	return gen.ReportConfig{
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

func parseFloats(values []string) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v)
		}
		out = append(out, f)
	}
	return out, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
