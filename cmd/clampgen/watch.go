package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the config file changes",
	Long: `Run generate once, then again each time the config file is saved.
Stops on Ctrl+C.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", clampgen.DefaultDebounceDuration, "Quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := runGenerate(cmd, nil); err != nil {
		return err
	}

	configPath := configPathFlag(cmd)
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Watching %s (Ctrl+C to stop)\n", configPath)
	}

	return clampgen.Watch(ctx, clampgen.WatchConfig{
		Paths:    []string{configPath},
		Debounce: debounce,
		OnError: func(err error) {
			useColors := gen.ShouldUseColors(getBoolWithFallback("color", "color", false))
			fmt.Fprintln(os.Stderr, gen.RenderStyle(gen.StyleRed, "Error: "+err.Error(), useColors))
		},
	}, func() error {
		// Reload from scratch so removed keys fall back to defaults
		k = koanf.New(".")
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Printf("\n%s changed, regenerating...\n", configPath)
		}
		return runGenerate(cmd, nil)
	})
}
