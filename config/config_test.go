package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikitext/tokenizer/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Zero(t, cfg.MaxDepth)
	assert.False(t, cfg.SkipStyleTags)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wikitok.toml")
	contents := `
max_depth = 50
skip_style_tags = true
blacklist_tags = ["mytag"]
format = "xml"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.True(t, cfg.SkipStyleTags)
	assert.Equal(t, []string{"mytag"}, cfg.BlacklistTags)
	assert.Equal(t, config.FormatXML, cfg.Format)

	d := cfg.Definitions()
	assert.True(t, d.IsParserBlacklisted("mytag"))
	assert.True(t, d.IsParserBlacklisted("nowiki"))
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
