// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user defaults for backend selection and backend settings.
type Config struct {
	Backend string        `toml:"backend,omitempty"`
	Dialog  DialogConfig  `toml:"dialog"`
	Zenity  ZenityConfig  `toml:"zenity"`
	KDialog KDialogConfig `toml:"kdialog"`
}

type DialogConfig struct {
	Backtitle string `toml:"backtitle,omitempty"`
	Width     uint32 `toml:"width,omitempty"`
	Height    uint32 `toml:"height,omitempty"`
}

type ZenityConfig struct {
	Icon    string `toml:"icon,omitempty"`
	Width   uint32 `toml:"width,omitempty"`
	Height  uint32 `toml:"height,omitempty"`
	Timeout uint32 `toml:"timeout,omitempty"`
}

type KDialogConfig struct {
	Icon string `toml:"icon,omitempty"`
}

// Load reads the config file. A missing file yields a zero Config and no
// error; the returned path is where Save would write.
func Load() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := loadToml(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, path, nil
	}
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path returns the location of config.toml under the user config directory.
func Path() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(configHome, "dialog", "config.toml"), nil
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
