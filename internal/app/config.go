package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// DefaultPort is the fixed listening port. It is deliberately not read from
// the environment or flags.
const DefaultPort = 8080

// Config holds initialization parameters for the App.
type Config struct {
	Command  string `env:"OPERATOR_GUI_COMMAND,default=operator-cli"`
	PagePath string `env:"OPERATOR_GUI_PAGE"`
	LogLevel string `env:"OPERATOR_GUI_LOG_LEVEL,default=info"`

	// Port is always DefaultPort outside of tests.
	Port int
}

// LoadConfig reads envFile (if present) into the process environment without
// overriding variables that are already set, then decodes the environment.
// An empty PagePath resolves to <install dir>/frontend/index.html.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{Port: DefaultPort}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	if cfg.PagePath == "" {
		cfg.PagePath = NewPaths(InstallRoot()).Page
	}
	return cfg, nil
}
