package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

type Config struct {
	Game    GameConfig
	Logging LoggingConfig
	Display DisplayConfig
}

type GameConfig struct {
	Seed      uint64 // 0 means seed from the clock
	RulesPath string
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string // empty means stderr
}

type DisplayConfig struct {
	Scale int
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	config, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func load() (*Config, error) {
	game, err := loadGameConfig()
	if err != nil {
		return nil, err
	}
	display, err := loadDisplayConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		Game:    game,
		Logging: loadLoggingConfig(),
		Display: display,
	}, nil
}

func loadGameConfig() (GameConfig, error) {
	seed, err := strconv.ParseUint(getEnv("SUPERTREK_SEED", "0"), 10, 64)
	if err != nil {
		return GameConfig{}, fmt.Errorf("SUPERTREK_SEED: %w", err)
	}
	return GameConfig{
		Seed:      seed,
		RulesPath: getEnv("SUPERTREK_RULES", ""),
	}, nil
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		File:   getEnv("LOG_FILE", ""),
	}
}

func loadDisplayConfig() (DisplayConfig, error) {
	scale, err := strconv.Atoi(getEnv("SUPERTREK_SCALE", "2"))
	if err != nil {
		return DisplayConfig{}, fmt.Errorf("SUPERTREK_SCALE: %w", err)
	}
	return DisplayConfig{Scale: scale}, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 4 {
		return fmt.Errorf("SUPERTREK_SCALE must be between 1 and 4, got %d", c.Display.Scale)
	}
	return nil
}

// Rules returns the game tuning: the defaults, or the YAML file named by
// SUPERTREK_RULES.
func (c *Config) Rules() (world.Rules, error) {
	if c.Game.RulesPath == "" {
		return world.DefaultRules(), nil
	}
	data, err := os.ReadFile(c.Game.RulesPath)
	if err != nil {
		return world.Rules{}, fmt.Errorf("read rules: %w", err)
	}
	rules, err := world.LoadRules(data)
	if err != nil {
		return world.Rules{}, fmt.Errorf("%s: %w", c.Game.RulesPath, err)
	}
	return rules, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
