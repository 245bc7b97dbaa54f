// Package config loads the pokerhand HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhand/poker"
)

// DefaultFile is the configuration file read when no path is given.
const DefaultFile = "pokerhand.hcl"

// Config is the complete pokerhand configuration.
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Display    *DisplaySettings  `hcl:"display,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// DisplaySettings controls terminal rendering.
type DisplaySettings struct {
	Color   *bool `hcl:"color,optional"`
	Symbols *bool `hcl:"symbols,optional"`
}

// SimulationConfig holds defaults for the simulate command.
type SimulationConfig struct {
	Rounds         int    `hcl:"rounds,optional"`
	Players        int    `hcl:"players,optional"`
	CardsPerPlayer int    `hcl:"cards_per_player,optional"`
	Workers        int    `hcl:"workers,optional"`
	Seed           int64  `hcl:"seed,optional"`
	MinCategory    string `hcl:"min_category,optional"`
	Samples        int    `hcl:"samples,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file is not an error
// and yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.Color == nil {
		c.Display.Color = boolPtr(true)
	}
	if c.Display.Symbols == nil {
		c.Display.Symbols = boolPtr(true)
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	sim := c.Simulation
	if sim.Rounds == 0 {
		sim.Rounds = 1000
	}
	if sim.Players == 0 {
		sim.Players = 4
	}
	if sim.CardsPerPlayer == 0 {
		sim.CardsPerPlayer = 7
	}
	if sim.MinCategory == "" {
		sim.MinCategory = poker.Straight.String()
	}
	if sim.Samples == 0 {
		sim.Samples = 10
	}
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	sim := c.Simulation
	if sim.Rounds < 1 {
		return fmt.Errorf("simulation: rounds must be positive, got %d", sim.Rounds)
	}
	if sim.Players < 2 {
		return fmt.Errorf("simulation: at least 2 players required, got %d", sim.Players)
	}
	if sim.CardsPerPlayer < poker.HandSize {
		return fmt.Errorf("simulation: cards_per_player must be at least %d, got %d", poker.HandSize, sim.CardsPerPlayer)
	}
	if sim.Players*sim.CardsPerPlayer > poker.DeckSize {
		return fmt.Errorf("simulation: %d players with %d cards each needs more than %d cards",
			sim.Players, sim.CardsPerPlayer, poker.DeckSize)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("simulation: workers cannot be negative, got %d", sim.Workers)
	}
	if sim.Samples < 0 {
		return fmt.Errorf("simulation: samples cannot be negative, got %d", sim.Samples)
	}
	if _, err := poker.ParseCategory(sim.MinCategory); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func boolPtr(b bool) *bool {
	return &b
}
