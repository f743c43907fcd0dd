package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Interpreter settings
	Assistant AssistantConfig `yaml:"assistant"`

	// Upcoming birthday query
	Birthdays BirthdaysConfig `yaml:"birthdays"`

	// Diagnostics
	Log LogConfig `yaml:"log"`
}

type AssistantConfig struct {
	Prompt   string `yaml:"prompt" env:"CONTACTBOOK_PROMPT"` // Shown before each line on a terminal
	Greeting string `yaml:"greeting"`                        // Printed when the session starts
	Farewell string `yaml:"farewell"`                        // Printed on close/exit
}

type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days" env:"CONTACTBOOK_WINDOW_DAYS"` // Days ahead, inclusive
}

type LogConfig struct {
	Level  string `yaml:"level" env:"CONTACTBOOK_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"CONTACTBOOK_LOG_FORMAT"` // console or json
	Output string `yaml:"output" env:"CONTACTBOOK_LOG_OUTPUT"` // stderr, stdout or a file path
}

// DefaultConfigPath returns ~/.config/contactbook/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "contactbook", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "contactbook", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Assistant: AssistantConfig{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to the assistant bot!",
			Farewell: "Good bye!",
		},
		Birthdays: BirthdaysConfig{
			WindowDays: 7,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist.
// Environment variables (optionally from a .env file) override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

func (c *Config) applyEnvOverrides() error {
	// A missing .env file is normal
	_ = godotenv.Load()

	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate returns an error if the config is invalid
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 0 {
		return errors.New("birthdays.window_days cannot be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
