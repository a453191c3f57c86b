// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Unlike a server, this tool must be runnable with nothing but a
// terminal: when neither source names a file, every field falls back to
// its default and the roster lives in memory for the process lifetime.
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the SQLite DSN. The default ":memory:" keeps the
	// roster strictly process-lifetime; point it at a .db file to keep
	// records across runs.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:":memory:"`

	// LogPath, when set, sends structured logs to a file instead of
	// stderr. Useful when tailing logs next to an interactive session.
	LogPath string `yaml:"log_path" env:"LOG_PATH" env-default:""`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	// ── Source 1: environment variable ───────────────────────────────
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/roster --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No path from either source: run on defaults plus any ENV /
	// STORAGE_PATH / LOG_PATH variables present in the environment.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read environment config: %s", err.Error())
		}
		return &cfg
	}

	// A path was given explicitly, so a missing file is an operator
	// mistake worth failing loudly on rather than silently ignoring.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file, then overlays any
	// env:"..." tagged variables from the environment.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
