// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelgrid configuration.

package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the variable that points at an explicit config file.
const EnvConfigPath = "TEXELGRID_CONFIG"

const configFileName = "config.toml"

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelgrid"), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/texelgrid/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configFileName), nil
}

// resolvePath picks the config file: explicit argument, then EnvConfigPath,
// then DefaultPath. explicit reports whether a missing file is an error.
func resolvePath(path string) (resolved string, explicit bool, err error) {
	if path != "" {
		return path, true, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true, nil
	}
	p, err := DefaultPath()
	return p, false, err
}
