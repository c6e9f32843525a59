// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import _ "embed"

//go:embed config.toml
var configTOML []byte

// Config returns the embedded default config TOML.
func Config() []byte {
	return append([]byte(nil), configTOML...)
}
