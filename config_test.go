package clampgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gen "github.com/yacobolo/clampgen/internal/clampgen"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, "tailwind.config.mjs", config.ConfigOut)
	assert.Equal(t, "src/styles/clamps.css", config.StylesheetOut)
	assert.Len(t, config.Breakpoints, 80)
	assert.Len(t, config.Spacing, 4)
}

func TestDefaultConfigContentIsCopy(t *testing.T) {
	config := DefaultConfig()
	config.Content[0] = "mutated"
	assert.NotEqual(t, "mutated", gen.DefaultContent[0])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Device.Width = 0 },
			wantErr: []string{"device width must be positive"},
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.Device.Height = -1 },
			wantErr: []string{"device height must be positive"},
		},
		{
			name:    "unknown unit",
			mutate:  func(c *Config) { c.Spacing[0].Unit = "px" },
			wantErr: []string{`spacing[0]: unit must be vh or vw, got "px"`},
		},
		{
			name:    "step too small",
			mutate:  func(c *Config) { c.Spacing[2].Step = 0.001 },
			wantErr: []string{"spacing[2]: step must be at least 0.01"},
		},
		{
			name:    "half step stalls after rounding",
			mutate:  func(c *Config) { c.Spacing[0].Step = 0.005 },
			wantErr: []string{"spacing[0]: step must be at least 0.01"},
		},
		{
			name:    "no breakpoints",
			mutate:  func(c *Config) { c.Breakpoints = nil },
			wantErr: []string{"at least one breakpoint is required"},
		},
		{
			name:    "non-positive breakpoint",
			mutate:  func(c *Config) { c.Breakpoints = []float64{1, 0} },
			wantErr: []string{"breakpoints[1]: must be positive"},
		},
		{
			name: "every problem reported",
			mutate: func(c *Config) {
				c.ConfigOut = ""
				c.StylesheetOut = ""
				c.Device.RemBase = 0
			},
			wantErr: []string{"config output path is empty", "stylesheet output path is empty", "rem base must be positive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
