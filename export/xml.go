// Package export renders a wikitext token stream into forms useful for
// inspection or golden-file testing, rather than further parsing.
package export

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/wikitext/tokenizer/token"
)

// elementName maps a token.Kind to the XML element tag used to represent
// it, lowercased and hyphenated the way MediaWiki's own dump formats name
// things (e.g. "template-open" rather than "TemplateOpen").
var elementName = map[token.Kind]string{
	token.Text: "text",

	token.TemplateOpen:           "template-open",
	token.TemplateParamSeparator: "template-param-separator",
	token.TemplateParamEquals:    "template-param-equals",
	token.TemplateClose:          "template-close",

	token.ArgumentOpen:      "argument-open",
	token.ArgumentSeparator: "argument-separator",
	token.ArgumentClose:     "argument-close",

	token.WikilinkOpen:      "wikilink-open",
	token.WikilinkSeparator: "wikilink-separator",
	token.WikilinkClose:     "wikilink-close",

	token.ExternalLinkOpen:      "external-link-open",
	token.ExternalLinkSeparator: "external-link-separator",
	token.ExternalLinkClose:     "external-link-close",

	token.HTMLEntityStart:   "entity-start",
	token.HTMLEntityNumeric: "entity-numeric",
	token.HTMLEntityHex:     "entity-hex",
	token.HTMLEntityEnd:     "entity-end",

	token.HeadingStart: "heading-start",
	token.HeadingEnd:   "heading-end",

	token.CommentStart: "comment-start",
	token.CommentEnd:   "comment-end",

	token.TagOpenOpen:       "tag-open-open",
	token.TagAttrStart:      "tag-attr-start",
	token.TagAttrEquals:     "tag-attr-equals",
	token.TagAttrQuote:      "tag-attr-quote",
	token.TagCloseOpen:      "tag-close-open",
	token.TagCloseSelfclose: "tag-close-selfclose",
	token.TagOpenClose:      "tag-open-close",
	token.TagCloseClose:     "tag-close-close",

	token.ItalicOpen:  "italic-open",
	token.ItalicClose: "italic-close",
	token.BoldOpen:    "bold-open",
	token.BoldClose:   "bold-close",

	token.OrderedListItem:   "ordered-list-item",
	token.UnorderedListItem: "unordered-list-item",
	token.DescriptionTerm:   "description-term",
	token.DescriptionItem:   "description-item",
	token.HorizontalRule:    "horizontal-rule",

	token.TableOpen:      "table-open",
	token.TableClose:     "table-close",
	token.TableRowOpen:   "table-row-open",
	token.TableRowClose:  "table-row-close",
	token.TableCellOpen:  "table-cell-open",
	token.TableCellClose: "table-cell-close",
}

// XML renders toks as an XML document: a <tokens> root holding one child
// element per token, named after its kind, with whatever payload that
// kind carries attached as attributes (or, for Text, as element text).
func XML(toks []token.Token) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("tokens")

	for i, tok := range toks {
		name, ok := elementName[tok.Kind]
		if !ok {
			return nil, fmt.Errorf("export: token %d has unrecognized kind %v", i, tok.Kind)
		}
		el := root.CreateElement(name)
		appendPayload(el, tok)
	}

	doc.Indent(2)
	return doc, nil
}

// appendPayload attaches tok's payload fields to el, skipping any that are
// zero-valued for tok's kind (a Text token's Brackets field, say, is never
// meaningful and is never written).
func appendPayload(el *etree.Element, tok token.Token) {
	switch tok.Kind {
	case token.Text:
		el.SetText(tok.Text)
	case token.HTMLEntityStart, token.HTMLEntityNumeric, token.HTMLEntityHex:
		if tok.Text != "" {
			el.SetText(tok.Text)
		}
	case token.ExternalLinkOpen:
		el.CreateAttr("brackets", boolAttr(tok.Brackets))
	case token.ExternalLinkSeparator:
		el.CreateAttr("space", boolAttr(tok.Space))
	case token.HeadingStart:
		el.CreateAttr("level", fmt.Sprintf("%d", tok.Level))
	case token.TagAttrQuote:
		if tok.Quote != 0 {
			el.CreateAttr("quote", string(tok.Quote))
		}
	case token.TagAttrStart, token.TagCloseOpen, token.TagCloseSelfclose:
		if tok.PadBefore != "" {
			el.CreateAttr("pad-before", tok.PadBefore)
		}
	case token.TagAttrEquals:
		if tok.PadBefore != "" {
			el.CreateAttr("pad-before", tok.PadBefore)
		}
		if tok.PadAfter != "" {
			el.CreateAttr("pad-after", tok.PadAfter)
		}
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// WriteXML renders toks as XML and writes it to w.
func WriteXML(w io.Writer, toks []token.Token) error {
	doc, err := XML(toks)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}
