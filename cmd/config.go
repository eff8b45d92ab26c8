package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// config is the configuration read from the environment.
type config struct {
	Settings string `env:"DROPS_SETTINGS" envDefault:"settings.json"`
	Catalog  string `env:"DROPS_CATALOG"`
	Verbose  bool   `env:"DROPS_VERBOSE"`
}

// Setup reads the configuration, from an optional .env file, the
// environment, then the global flags, and sets the logger up. It must be
// called after the flags are parsed.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}
	c, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = c

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	log.Debug().Str("settings", cfg.Settings).Str("catalog", cfg.Catalog).Msg("setup")
	return nil
}

// loadConfig merges the environment and the global flags.
func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if *settingsFlag != "" {
		c.Settings = *settingsFlag
	}
	if c.Settings == "" {
		c.Settings = drops.DefaultSettingsPath
	}
	if *catalogFlag != "" {
		c.Catalog = *catalogFlag
	}
	if *verboseFlag {
		c.Verbose = true
	}
	return c, nil
}
