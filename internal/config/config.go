// Package config loads the trainer's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
	"github.com/lox/basicstrategy/internal/trainer"
)

// Config represents the complete configuration file
type Config struct {
	Trainer  TrainerSettings
	Rules    RuleSettings
	Simulate SimulateSettings
}

// TrainerSettings configures drill sessions
type TrainerSettings struct {
	User   string `hcl:"user,optional"`
	Mode   string `hcl:"mode,optional"`
	Rounds int    `hcl:"rounds,optional"`
	Seed   int64  `hcl:"seed,optional"`
}

// RuleSettings are the table rules used to resolve composite actions. They
// are pointers so an omitted attribute keeps its default.
type RuleSettings struct {
	DoubleAfterSplit *bool `hcl:"double_after_split,optional"`
	Double           *bool `hcl:"double,optional"`
	Surrender        *bool `hcl:"surrender,optional"`
}

// SimulateSettings configures the simulate command
type SimulateSettings struct {
	Rounds  int `hcl:"rounds,optional"`
	Workers int `hcl:"workers,optional"`
}

// file mirrors Config with every block optional
type file struct {
	Trainer  *TrainerSettings  `hcl:"trainer,block"`
	Rules    *RuleSettings     `hcl:"rules,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

const (
	defaultUser       = "player"
	defaultRounds     = 20
	defaultSimRounds  = 100000
	defaultSimWorkers = 4
)

func enabled() *bool {
	v := true
	return &v
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Trainer: TrainerSettings{
			User:   defaultUser,
			Mode:   mode.Basic.String(),
			Rounds: defaultRounds,
		},
		Rules: RuleSettings{
			DoubleAfterSplit: enabled(),
			Double:           enabled(),
			Surrender:        enabled(),
		},
		Simulate: SimulateSettings{
			Rounds:  defaultSimRounds,
			Workers: defaultSimWorkers,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(f.Body)
}

// Parse loads configuration from HCL source; filename is used in
// diagnostics only
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(f.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var raw file
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if t := raw.Trainer; t != nil {
		if t.User != "" {
			config.Trainer.User = t.User
		}
		if t.Mode != "" {
			config.Trainer.Mode = t.Mode
		}
		if t.Rounds != 0 {
			config.Trainer.Rounds = t.Rounds
		}
		config.Trainer.Seed = t.Seed
	}
	if r := raw.Rules; r != nil {
		if r.DoubleAfterSplit != nil {
			config.Rules.DoubleAfterSplit = r.DoubleAfterSplit
		}
		if r.Double != nil {
			config.Rules.Double = r.Double
		}
		if r.Surrender != nil {
			config.Rules.Surrender = r.Surrender
		}
	}
	if s := raw.Simulate; s != nil {
		if s.Rounds != 0 {
			config.Simulate.Rounds = s.Rounds
		}
		if s.Workers != 0 {
			config.Simulate.Workers = s.Workers
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := mode.Parse(c.Trainer.Mode); err != nil {
		return fmt.Errorf("trainer: %w", err)
	}
	if c.Trainer.Rounds < 0 {
		return fmt.Errorf("trainer: rounds must not be negative, got %d", c.Trainer.Rounds)
	}
	if c.Simulate.Rounds <= 0 {
		return fmt.Errorf("simulate: rounds must be positive, got %d", c.Simulate.Rounds)
	}
	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("simulate: workers must be positive, got %d", c.Simulate.Workers)
	}
	return nil
}

// Mode returns the configured training mode, Basic if it does not parse
func (c *Config) Mode() mode.Mode {
	m, err := mode.Parse(c.Trainer.Mode)
	if err != nil {
		return mode.Basic
	}
	return m
}

// TableRules returns the configured table rules
func (c *Config) TableRules() strategy.Rules {
	return strategy.Rules{
		DoubleAfterSplit: isSet(c.Rules.DoubleAfterSplit),
		Double:           isSet(c.Rules.Double),
		Surrender:        isSet(c.Rules.Surrender),
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}

// TrainerConfig returns the session configuration described by the file
func (c *Config) TrainerConfig() trainer.Config {
	return trainer.Config{
		User:  c.Trainer.User,
		Mode:  c.Mode(),
		Rules: c.TableRules(),
		Seed:  c.Trainer.Seed,
	}
}
