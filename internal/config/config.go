// Package config loads viewer settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"xkcdterm/internal/viewport"
)

const appName = "xkcdterm"

type Config struct {
	Threshold     int           `yaml:"threshold"`
	StepRows      int           `yaml:"step_rows"`
	StepCols      int           `yaml:"step_cols"`
	MarginLeft    int           `yaml:"margin_left"`
	MarginRight   int           `yaml:"margin_right"`
	BaseURL       string        `yaml:"base_url"`
	RandomURL     string        `yaml:"random_url"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxImageWidth int           `yaml:"max_image_width"`
	CacheSize     int           `yaml:"cache_size"`
	Prefetch      bool          `yaml:"prefetch"`
	LogFile       string        `yaml:"log_file"`
	LogLevel      string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	vp := viewport.DefaultConfig()
	return &Config{
		Threshold:   128,
		StepRows:    vp.StepRows,
		StepCols:    vp.StepCols,
		MarginLeft:  vp.MarginLeft,
		MarginRight: vp.MarginRight,
		BaseURL:     "https://xkcd.com",
		RandomURL:   "https://c.xkcd.com/random/comic/",
		Timeout:     30 * time.Second,
		CacheSize:   16,
		Prefetch:    true,
		LogLevel:    "info",
	}
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config path: %w", err)
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("XKCDTERM_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("XKCDTERM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects settings the viewer cannot work with.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", c.Threshold)
	}
	if c.StepRows < 1 || c.StepCols < 1 {
		return fmt.Errorf("scroll steps must be positive, got %d rows %d cols", c.StepRows, c.StepCols)
	}
	if c.MarginLeft < 0 || c.MarginRight < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxImageWidth < 0 || c.CacheSize < 0 {
		return fmt.Errorf("max_image_width and cache_size must not be negative")
	}
	return nil
}

// Viewport returns the layout and scroll settings.
func (c *Config) Viewport() viewport.Config {
	vp := viewport.DefaultConfig()
	vp.StepRows = c.StepRows
	vp.StepCols = c.StepCols
	vp.MarginLeft = c.MarginLeft
	vp.MarginRight = c.MarginRight
	return vp
}

// ThresholdByte returns the binarization threshold as a pixel value.
func (c *Config) ThresholdByte() uint8 {
	return uint8(c.Threshold)
}

// DefaultPath returns $XDG_CONFIG_HOME/xkcdterm/config.yaml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/xkcdterm/xkcdterm.log, falling back
// to ~/.local/state.
func DefaultLogPath() (string, error) {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName, appName+".log"), nil
}
