// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Registers the embedded defaults as viper defaults.

package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"

	"github.com/framegrace/texelgrid/defaults"
)

// applyDefaults copies every key of the embedded TOML into v's default layer
// so env overrides apply to them during Unmarshal.
func applyDefaults(v *viper.Viper) error {
	dv := viper.New()
	dv.SetConfigType("toml")
	if err := dv.ReadConfig(bytes.NewReader(defaults.Config())); err != nil {
		return fmt.Errorf("parse embedded defaults: %w", err)
	}
	for _, key := range dv.AllKeys() {
		v.SetDefault(key, dv.Get(key))
	}
	return nil
}
