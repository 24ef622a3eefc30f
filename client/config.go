package client

import (
	"errors"
	"flag"
	"fmt"
)

// Config controls window creation and loop timing.
type Config struct {
	Title            string
	Width            int
	Height           int
	UpdatesPerSecond int
	Debug            bool
}

// DefaultConfig returns the settings the engine ships with.
func DefaultConfig() Config {
	return Config{
		Title:            "gæmstone",
		Width:            1280,
		Height:           720,
		UpdatesPerSecond: 30,
	}
}

// RegisterFlags binds the config fields to command line flags, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "Window title.")
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.IntVar(&c.UpdatesPerSecond, "ups", c.UpdatesPerSecond, "Fixed updates per second.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
}

// Validate reports configuration values the loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.UpdatesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("updates per second %d must be positive", c.UpdatesPerSecond))
	}
	return errors.Join(errs...)
}
