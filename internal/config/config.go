package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/warband/internal/game/ability"
	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/player"
)

// Catalog sources.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogDatabase = "db"
)

var (
	ErrTick          = errors.New("tick must be positive")
	ErrCatalogSource = errors.New("unknown catalog source")
)

// Simulator holds all configuration for the combat simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level"`

	// Simulation
	Tick    time.Duration `yaml:"tick"`    // fixed step of Advance (default: 20ms)
	Seed    uint64        `yaml:"seed"`    // base RNG seed, each scenario adds its own
	Workers int           `yaml:"workers"` // concurrent scenario runs, 0 = unlimited

	// Content
	CatalogSource string         `yaml:"catalog_source"` // embedded | file | db
	CatalogPath   string         `yaml:"catalog_path"`
	Database      DatabaseConfig `yaml:"database"`

	// Game rules
	Player    player.Config  `yaml:"player"`
	Abilities ability.Config `yaml:"abilities"`
	Buffs     buff.Config    `yaml:"buffs"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with the game's default constants.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:      "info",
		Tick:          20 * time.Millisecond,
		Seed:          1,
		Workers:       4,
		CatalogSource: CatalogEmbedded,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "warband",
			Password: "warband",
			DBName:   "warband",
			SSLMode:  "disable",
		},
		Player:    player.DefaultConfig(),
		Abilities: ability.DefaultConfig(),
		Buffs:     buff.DefaultConfig(),
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults. Keys absent from the file keep
// their default values.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

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
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would make the simulation meaningless.
func (s Simulator) Validate() error {
	if s.Tick <= 0 {
		return ErrTick
	}
	switch s.CatalogSource {
	case CatalogEmbedded, CatalogFile, CatalogDatabase:
	default:
		return fmt.Errorf("%q: %w", s.CatalogSource, ErrCatalogSource)
	}
	return nil
}

// SlogLevel converts LogLevel to slog.Level. Unknown values map to Info.
func (s Simulator) SlogLevel() slog.Level {
	switch s.LogLevel {
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
