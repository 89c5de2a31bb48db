package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider = "gemini"
	DefaultModel    = "gemini-2.5-flash"
	DefaultTimeout  = 2 * time.Minute
)

// Config holds the non-secret settings. API keys never live here; they are
// read from the environment when a generation is attempted.
type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Provider: DefaultProvider,
		Model:    DefaultModel,
		Timeout:  DefaultTimeout.String(),
	}
}

// Load reads path, or DefaultPath when path is empty. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if _, err := cfg.RequestTimeout(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// DefaultPath is $XDG_CONFIG_HOME/paragen/config.yaml, falling back to
// ~/.config/paragen/config.yaml.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "paragen", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "paragen", "config.yaml"), nil
}

// ApplyEnv overlays PARAGEN_PROVIDER, PARAGEN_MODEL, PARAGEN_ENDPOINT and
// PARAGEN_TIMEOUT.
func (c *Config) ApplyEnv() {
	c.switchProvider(os.Getenv("PARAGEN_PROVIDER"))
	overlay(&c.Model, os.Getenv("PARAGEN_MODEL"))
	overlay(&c.Endpoint, os.Getenv("PARAGEN_ENDPOINT"))
	overlay(&c.Timeout, os.Getenv("PARAGEN_TIMEOUT"))
}

// Override applies non-empty flag values.
func (c *Config) Override(provider, model, endpoint, timeout string) {
	c.switchProvider(provider)
	overlay(&c.Model, model)
	overlay(&c.Endpoint, endpoint)
	overlay(&c.Timeout, timeout)
}

// switchProvider sets a non-empty provider. A different provider should not
// inherit the old provider's model, so Model is cleared on a change; callers
// overlay an explicit model afterwards.
func (c *Config) switchProvider(provider string) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return
	}
	if !strings.EqualFold(provider, c.Provider) {
		c.Model = ""
	}
	c.Provider = provider
}

// RequestTimeout parses Timeout. Zero means no deadline.
func (c *Config) RequestTimeout() (time.Duration, error) {
	value := strings.TrimSpace(c.Timeout)
	if value == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", value)
	}
	return d, nil
}

func (c *Config) fillDefaults() {
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = DefaultProvider
		if c.Model == "" {
			c.Model = DefaultModel
		}
	}
	if strings.TrimSpace(c.Timeout) == "" {
		c.Timeout = DefaultTimeout.String()
	}
}

func overlay(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
