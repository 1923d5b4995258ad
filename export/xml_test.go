package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikitext/tokenizer/export"
	"github.com/wikitext/tokenizer/token"
)

func TestWriteXML(t *testing.T) {
	toks := []token.Token{
		{Kind: token.TemplateOpen},
		token.NewText("x"),
		{Kind: token.TemplateClose},
	}

	var buf strings.Builder
	require.NoError(t, export.WriteXML(&buf, toks))

	out := buf.String()
	assert.Contains(t, out, "<tokens>")
	assert.Contains(t, out, "<template-open/>")
	assert.Contains(t, out, "<text>x</text>")
	assert.Contains(t, out, "<template-close/>")
}

func TestXMLUnrecognizedKind(t *testing.T) {
	_, err := export.XML([]token.Token{{Kind: token.Kind(9999)}})
	assert.Error(t, err)
}

func TestXMLTagAttrPadding(t *testing.T) {
	toks := []token.Token{
		{Kind: token.TagOpenOpen},
		token.NewText("b"),
		{Kind: token.TagAttrStart, PadBefore: "  "},
		token.NewText("class"),
		{Kind: token.TagAttrEquals, PadAfter: " "},
		{Kind: token.TagAttrQuote, Quote: '"'},
		token.NewText("x"),
		{Kind: token.TagCloseOpen},
	}
	doc, err := export.XML(toks)
	require.NoError(t, err)
	s, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, s, `pad-before="  "`)
	assert.Contains(t, s, `pad-after=" "`)
	assert.Contains(t, s, "tag-attr-quote")
}
