package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds configuration for the battle engine host.
type Engine struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Dataset is an optional YAML dataset replacing the embedded one.
	Dataset string `yaml:"dataset"`
	// Seed for the random source; 0 seeds from crypto/rand.
	Seed uint64 `yaml:"seed"`

	Simulation Simulation `yaml:"simulation"`
}

// Simulation configures a Monte-Carlo run of one move between two builds.
type Simulation struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"`

	Move     string    `yaml:"move"`
	Attacker Combatant `yaml:"attacker"`
	Defender Combatant `yaml:"defender"`
}

// Combatant is a build described by dataset names.
type Combatant struct {
	Species string   `yaml:"species"`
	Level   uint8    `yaml:"level"`
	Nature  string   `yaml:"nature"`
	Moves   []string `yaml:"moves"`
	IVs     Spread   `yaml:"ivs"`
	EVs     Spread   `yaml:"evs"`
}

// Spread is a per-stat value set (IVs or EVs).
type Spread struct {
	HP             uint8 `yaml:"hp"`
	Attack         uint8 `yaml:"attack"`
	Defense        uint8 `yaml:"defense"`
	SpecialAttack  uint8 `yaml:"special-attack"`
	SpecialDefense uint8 `yaml:"special-defense"`
	Speed          uint8 `yaml:"speed"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel: "info",
		Simulation: Simulation{
			Trials:  10000,
			Workers: 4,
			Move:    "Tackle",
			Attacker: Combatant{
				Species: "Rattata",
				Level:   50,
				Nature:  "hardy",
				Moves:   []string{"Tackle"},
			},
			Defender: Combatant{
				Species: "Snorlax",
				Level:   50,
				Nature:  "hardy",
			},
		},
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Engine) validate() error {
	s := c.Simulation
	if s.Trials <= 0 {
		return fmt.Errorf("simulation.trials must be positive, got %d", s.Trials)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("simulation.workers must be positive, got %d", s.Workers)
	}
	if s.Move == "" {
		return fmt.Errorf("simulation.move is required")
	}
	return nil
}

// ParseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger writing to w at the configured level.
func NewLogger(cfg Engine, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(cfg.LogLevel),
	}))
}
