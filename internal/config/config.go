package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppName  string
	Debug    bool
	LogLevel string
	LogFile  string

	GridWidth     int
	GridHeight    int
	TickInterval  time.Duration
	FrameInterval time.Duration
	InputDebounce time.Duration

	ScriptPath   string
	AgentStart   bool
	WeightJitter float64
	Seed         uint64
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppName:       getEnv("APP_NAME", "tetrisbot"),
		Debug:         getEnvAsBool("DEBUG", false),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		GridWidth:     getEnvAsInt("GRID_WIDTH", 10),
		GridHeight:    getEnvAsInt("GRID_HEIGHT", 20),
		TickInterval:  getEnvAsDuration("TICK_INTERVAL", time.Second),
		FrameInterval: getEnvAsDuration("FRAME_INTERVAL", time.Second/30),
		InputDebounce: getEnvAsDuration("INPUT_DEBOUNCE", 100*time.Millisecond),
		ScriptPath:    getEnv("SCRIPT_PATH", "games/tetris/tetris.lua"),
		AgentStart:    getEnvAsBool("AGENT_START", false),
		WeightJitter:  getEnvAsFloat("WEIGHT_JITTER", 0),
	}

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.GridWidth < 4 || c.GridHeight < 4 {
		return fmt.Errorf("grid %dx%d is too small, need at least 4x4", c.GridWidth, c.GridHeight)
	}
	if c.TickInterval <= 0 || c.FrameInterval <= 0 {
		return fmt.Errorf("tick and frame intervals must be positive")
	}
	if c.WeightJitter < 0 {
		return fmt.Errorf("WEIGHT_JITTER must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level; DEBUG forces debug output.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
