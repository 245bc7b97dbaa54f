package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.True(t, *cfg.Display.Color)
	assert.Equal(t, 7, cfg.Simulation.CardsPerPlayer)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

display {
  color = false
}

simulation {
  rounds       = 250
  players      = 6
  workers      = 2
  seed         = 42
  min_category = "full house"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.False(t, *cfg.Display.Color)
	assert.True(t, *cfg.Display.Symbols, "unset symbols should default to true")
	assert.Equal(t, 250, cfg.Simulation.Rounds)
	assert.Equal(t, 6, cfg.Simulation.Players)
	assert.Equal(t, 7, cfg.Simulation.CardsPerPlayer)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "full house", cfg.Simulation.MinCategory)
	assert.Equal(t, 10, cfg.Simulation.Samples)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `simulation { rounds = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `colour = true`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"one player", func(c *Config) { c.Simulation.Players = 1 }},
		{"four cards", func(c *Config) { c.Simulation.CardsPerPlayer = 4 }},
		{"too many cards", func(c *Config) { c.Simulation.Players = 8; c.Simulation.CardsPerPlayer = 7 }},
		{"no rounds", func(c *Config) { c.Simulation.Rounds = -1 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"negative samples", func(c *Config) { c.Simulation.Samples = -1 }},
		{"unknown category", func(c *Config) { c.Simulation.MinCategory = "five of a kind" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
