// Package data embeds the default game configuration.
package data

import _ "embed"

// defaultConfig is the YAML configuration used when no override file is given.
//
//go:embed config.yaml
var defaultConfig []byte

// DefaultConfig returns the embedded default configuration document.
func DefaultConfig() []byte {
	return defaultConfig
}
