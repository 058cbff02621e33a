// meta/meta.go
package meta

import (
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// DEFAULT_HOUSES is the number of houses per player on a standard board.
const DEFAULT_HOUSES = 6

// DEFAULT_SEEDS is the number of seeds each house starts with.
const DEFAULT_SEEDS = 4

// DEFAULT_UPDATE_BUFFER is the capacity of the engine's update channel.
const DEFAULT_UPDATE_BUFFER = 1

// Config holds the board and engine settings read from the environment.
type Config struct {
	Houses       int    `env:"KALAH_HOUSES"        envDefault:"6"`
	Seeds        int    `env:"KALAH_SEEDS"         envDefault:"4"`
	LogLevel     string `env:"KALAH_LOG_LEVEL"     envDefault:"info"`
	UpdateBuffer int    `env:"KALAH_UPDATE_BUFFER" envDefault:"1"`
}

// DefaultConfig returns the standard six-house, four-seed board.
func DefaultConfig() Config {
	return Config{
		Houses:       DEFAULT_HOUSES,
		Seeds:        DEFAULT_SEEDS,
		LogLevel:     zerolog.InfoLevel.String(),
		UpdateBuffer: DEFAULT_UPDATE_BUFFER,
	}
}

// LoadConfigFromEnv returns configuration from the environment, falling back
// to DefaultConfig when it cannot be parsed.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.UpdateBuffer < 0 {
		cfg.UpdateBuffer = DEFAULT_UPDATE_BUFFER
	}
	return cfg
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
