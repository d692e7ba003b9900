// Package gamedata provides the embedded text tables and balance settings
// and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON and YAML files from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS
