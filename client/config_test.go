package client

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"-width", "640", "-ups", "60", "-debug"}))

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 60, cfg.UpdatesPerSecond)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "gæmstone", cfg.Title)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"zero ups", func(c *Config) { c.UpdatesPerSecond = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransformPosition(t *testing.T) {
	var tr Transform
	tr.Translate(3, 4)
	tr.Scale(2, 2)

	x, y := tr.Position()
	assert.InDelta(t, 6.0, x, 1e-9)
	assert.InDelta(t, 8.0, y, 1e-9)
}
