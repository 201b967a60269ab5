package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/basicstrategy/internal/config"
	"github.com/lox/basicstrategy/internal/mode"
)

// Globals are the flags shared by every command
type Globals struct {
	Config string `help:"Path to the HCL config file" default:"bstrategy.hcl" type:"path"`
	Debug  bool   `help:"Enable debug logging"`

	Out io.Writer `kong:"-"`
}

func (g *Globals) stdout() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Globals) logger() *log.Logger {
	return newLogger(os.Stderr, g.Debug)
}

// loadConfig reads and validates the config file. A missing file yields
// the defaults.
func (g *Globals) loadConfig() (*config.Config, error) {
	c, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return c, nil
}

// resolveMode parses a mode flag, falling back to the configured mode when
// the flag is empty
func resolveMode(flag string, c *config.Config) (mode.Mode, error) {
	if flag == "" {
		return c.Mode(), nil
	}
	return mode.Parse(flag)
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
