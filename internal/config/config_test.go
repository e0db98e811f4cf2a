package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEngine_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadEngine(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEngine(), cfg)
}

func TestLoadEngine_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
seed: 42
simulation:
  trials: 500
  move: Ember
  attacker:
    species: Charmander
    level: 30
    nature: modest
    moves: [Ember]
    ivs: {special-attack: 31}
`)

	cfg, err := LoadEngine(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.Simulation.Trials)
	assert.Equal(t, 4, cfg.Simulation.Workers, "untouched keys keep defaults")
	assert.Equal(t, "Charmander", cfg.Simulation.Attacker.Species)
	assert.Equal(t, uint8(31), cfg.Simulation.Attacker.IVs.SpecialAttack)
	assert.Equal(t, "Snorlax", cfg.Simulation.Defender.Species)
}

func TestLoadEngine_Invalid(t *testing.T) {
	_, err := LoadEngine(writeConfig(t, "simulation: [1, 2"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadEngine(writeConfig(t, "simulation: {workers: 0}"))
	assert.ErrorContains(t, err, "simulation.workers")

	_, err = LoadEngine(writeConfig(t, "simulation: {trials: -1}"))
	assert.ErrorContains(t, err, "simulation.trials")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Engine{LogLevel: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "move", "Tackle")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "move=Tackle")
}
