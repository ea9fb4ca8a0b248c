package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .clampgen.yaml config file",
	Long:  `Create a .clampgen.yaml configuration file in the current directory with the reference device and breakpoints.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# clampgen configuration
# Values below reproduce the reference tailwind.config.mjs and clamps.css.
verbose: false

# Generation settings
generate:
  config-out: tailwind.config.mjs
  stylesheet-out: src/styles/clamps.css
  content:
    - "./src/**/*.{astro,html,js,jsx,md,mdx,svelte,ts,tsx,vue}"
  device:
    width: 768     # px
    height: 808    # px
    rem-base: 16   # px per rem
  # Sweeps are merged in order; a later sweep overwrites duplicate tokens.
  spacing:
    - { min: 0, max: 200, step: 0.1, unit: vh }
    - { min: 2.92, max: 2.92, step: 0.1, unit: vw }
    - { min: 0, max: 200, step: 0.1, unit: vw }
    - { min: 3.33, max: 3.33, step: 0.1, unit: vw }
  breakpoints: [
    0.3, 0.5, 0.6, 0.7, 0.9, 1, 1.2, 1.3, 1.4, 1.6, 1.8, 2.4, 3, 3.4, 3.6, 4, 4.5,
    5.3, 5.4, 5.5, 5.8, 5.9, 6, 6.8, 6.9, 7, 7.3, 7.5, 8, 8.2, 8.3, 8.5, 8.6, 8.8,
    9.8, 10.2, 11, 12, 12.2, 12.5, 13, 15, 16, 17, 17.7, 18.3, 19.5, 20, 21, 22,
    22.2, 22.5, 25, 27.7, 30.7, 32, 35, 37, 37.5, 37.7, 40, 40.8, 41.5, 42.5,
    43.8, 44.8, 45.5, 46.5, 47, 50, 51.5, 55, 57.2, 64.7, 70, 71.5, 72, 81.5, 84,
    92.3]

# Linting settings
lint:
  # paths default to generate.content
  strict: false
  output-format: issues    # issues | summary | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
