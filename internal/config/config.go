package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds the settings for a Wizard session. Values come from the
// environment, after any .env file in the working directory has been loaded.
type Config struct {
	Players    int           // Seats at the table, human included
	HumanName  string        // Empty means ask on the console
	Autoplay   bool          // The human seat is played by the computer too
	Seed       int64         // RNG seed (0 => time-based)
	ThinkDelay time.Duration // Pause before each computer decision
	WatchAddr  string        // Spectator server address, empty disables it
	LogFile    string
}

const (
	envPlayers    = "WIZARD_PLAYERS"
	envName       = "WIZARD_NAME"
	envAutoplay   = "WIZARD_AUTOPLAY"
	envSeed       = "WIZARD_SEED"
	envThinkDelay = "WIZARD_THINK_DELAY"
	envWatchAddr  = "WIZARD_WATCH_ADDR"
	envLogFile    = "WIZARD_LOG_FILE"
)

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Players:    6,
		ThinkDelay: 750 * time.Millisecond,
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv(envPlayers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envPlayers, err)
		}
		cfg.Players = n
	}
	cfg.HumanName = os.Getenv(envName)
	if v := os.Getenv(envAutoplay); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envAutoplay, err)
		}
		cfg.Autoplay = b
	}
	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(envThinkDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envThinkDelay, err)
		}
		cfg.ThinkDelay = d
	}
	cfg.WatchAddr = os.Getenv(envWatchAddr)
	cfg.LogFile = os.Getenv(envLogFile)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Players < 3 || c.Players > 6 {
		return fmt.Errorf("%s must be between 3 and 6, got %d", envPlayers, c.Players)
	}
	if c.ThinkDelay < 0 {
		return fmt.Errorf("%s must be >= 0", envThinkDelay)
	}
	return nil
}
