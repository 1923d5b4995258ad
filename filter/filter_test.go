package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikitext/tokenizer/filter"
	"github.com/wikitext/tokenizer/token"
)

func TestFilterByKind(t *testing.T) {
	f, err := filter.Compile(`Kind == "TemplateOpen" || Kind == "TemplateClose"`)
	require.NoError(t, err)

	toks := []token.Token{
		{Kind: token.TemplateOpen},
		token.NewText("x"),
		{Kind: token.TemplateClose},
	}
	got, err := f.Run(toks)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		{Kind: token.TemplateOpen},
		{Kind: token.TemplateClose},
	}, got)
}

func TestFilterByLevel(t *testing.T) {
	f, err := filter.Compile(`Level > 2`)
	require.NoError(t, err)

	toks := []token.Token{
		{Kind: token.HeadingStart, Level: 2},
		{Kind: token.HeadingStart, Level: 3},
	}
	got, err := f.Run(toks)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Level)
}

func TestCompileError(t *testing.T) {
	_, err := filter.Compile(`not valid expr (((`)
	assert.Error(t, err)
}
