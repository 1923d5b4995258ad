// Package config loads the TOML configuration file cmd/wikitok reads at
// startup: recursion-depth overrides, style-tag defaults, blacklist
// additions, and the default output format.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wikitext/tokenizer/internal/defs"
)

// Format selects how cmd/wikitok prints a token stream by default.
type Format string

const (
	FormatText Format = "text"
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// Config is the decoded shape of a wikitok.toml file.
type Config struct {
	// MaxDepth overrides scanner.MaxDepth when non-zero.
	MaxDepth int `toml:"max_depth"`
	// SkipStyleTags disables italics/bold parsing by default.
	SkipStyleTags bool `toml:"skip_style_tags"`
	// BlacklistTags are added to the built-in parser-blacklist (nowiki,
	// pre, and the like), so their bodies are read as literal text.
	BlacklistTags []string `toml:"blacklist_tags"`
	// Format is the default output format for cmd/wikitok.
	Format Format `toml:"format"`
}

// Default returns the configuration cmd/wikitok runs with absent a config
// file.
func Default() Config {
	return Config{Format: FormatText}
}

// Load decodes the TOML file at path into a Config seeded with Default's
// values, so a config file only needs to set what it overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists, and otherwise returns Default
// with a nil error - an absent config file is not a failure.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}
	return Load(path)
}

// Definitions builds a defs.Definitions that layers BlacklistTags on top
// of the built-in tables.
func (c Config) Definitions() defs.Definitions {
	return defs.Default{ExtraParserBlacklist: c.BlacklistTags}
}
