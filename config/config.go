// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Layered configuration for the terminal host and demo.
// Usage: cfg, err := config.Load(); precedence is env > file > embedded defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MaxRows bounds ui.rows; the largest preset shape has six rows.
const MaxRows = 6

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Demo DemoConfig `mapstructure:"demo"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string        `mapstructure:"title"`
	Rows         int           `mapstructure:"rows"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	CellWidth    int           `mapstructure:"cell_width"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// DemoConfig sizes the demo's content.
type DemoConfig struct {
	Items   int `mapstructure:"items"`
	Content int `mapstructure:"content"`
}

// Load reads configuration from TEXELGRID_CONFIG or the default path.
// Env var overrides use prefix TEXELGRID_.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration from path. An empty path falls back to
// TEXELGRID_CONFIG, then DefaultPath. A missing default file is not an error.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	if err := applyDefaults(v); err != nil {
		return Config{}, err
	}

	v.SetConfigType("toml")
	v.SetEnvPrefix("TEXELGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved, explicit, err := resolvePath(path)
	if err != nil {
		log.Printf("Config: no config directory: %v", err)
	} else {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if explicit || !missing {
				return Config{}, fmt.Errorf("read config %s: %w", resolved, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the host cannot work with.
func (c Config) Validate() error {
	switch {
	case c.UI.Rows < 1 || c.UI.Rows > MaxRows:
		return fmt.Errorf("config: ui.rows must be in [1, %d], got %d", MaxRows, c.UI.Rows)
	case c.UI.TickInterval <= 0:
		return fmt.Errorf("config: ui.tick_interval must be positive, got %s", c.UI.TickInterval)
	case c.UI.CellWidth < 2:
		return fmt.Errorf("config: ui.cell_width must be at least 2, got %d", c.UI.CellWidth)
	case c.Demo.Items < 0 || c.Demo.Content < 0:
		return fmt.Errorf("config: demo.items and demo.content must not be negative")
	}
	return nil
}

// Save writes cfg to path (DefaultPath when empty), creating directories.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.rows", cfg.UI.Rows)
	v.Set("ui.tick_interval", cfg.UI.TickInterval.String())
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("log.file", cfg.Log.File)
	v.Set("demo.items", cfg.Demo.Items)
	v.Set("demo.content", cfg.Demo.Content)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
