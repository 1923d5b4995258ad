// Package token defines the tagged token variant emitted by the wikitext
// scanner and basic predicates over it.
package token

import "strconv"

// Kind is the set of lexical token kinds emitted by the scanner.
type Kind int

const (
	Illegal Kind = iota
	Text

	templateBegin
	TemplateOpen
	TemplateParamSeparator
	TemplateParamEquals
	TemplateClose
	templateEnd

	argumentBegin
	ArgumentOpen
	ArgumentSeparator
	ArgumentClose
	argumentEnd

	wikilinkBegin
	WikilinkOpen
	WikilinkSeparator
	WikilinkClose
	wikilinkEnd

	extLinkBegin
	ExternalLinkOpen
	ExternalLinkSeparator
	ExternalLinkClose
	extLinkEnd

	entityBegin
	HTMLEntityStart
	HTMLEntityNumeric
	HTMLEntityHex
	HTMLEntityEnd
	entityEnd

	headingBegin
	HeadingStart
	HeadingEnd
	headingEnd

	commentBegin
	CommentStart
	CommentEnd
	commentEnd

	tagBegin
	TagOpenOpen
	TagAttrStart
	TagAttrEquals
	TagAttrQuote
	TagCloseOpen
	TagCloseSelfclose
	TagOpenClose
	TagCloseClose
	tagEnd

	styleBegin
	ItalicOpen
	ItalicClose
	BoldOpen
	BoldClose
	styleEnd

	listBegin
	OrderedListItem
	UnorderedListItem
	DescriptionTerm
	DescriptionItem
	HorizontalRule
	listEnd

	tableBegin
	TableOpen
	TableClose
	TableRowOpen
	TableRowClose
	TableCellOpen
	TableCellClose
	tableEnd
)

var names = [...]string{
	Illegal: "Illegal",
	Text:    "Text",

	TemplateOpen:           "TemplateOpen",
	TemplateParamSeparator: "TemplateParamSeparator",
	TemplateParamEquals:    "TemplateParamEquals",
	TemplateClose:          "TemplateClose",

	ArgumentOpen:      "ArgumentOpen",
	ArgumentSeparator: "ArgumentSeparator",
	ArgumentClose:     "ArgumentClose",

	WikilinkOpen:      "WikilinkOpen",
	WikilinkSeparator: "WikilinkSeparator",
	WikilinkClose:     "WikilinkClose",

	ExternalLinkOpen:      "ExternalLinkOpen",
	ExternalLinkSeparator: "ExternalLinkSeparator",
	ExternalLinkClose:     "ExternalLinkClose",

	HTMLEntityStart:   "HTMLEntityStart",
	HTMLEntityNumeric: "HTMLEntityNumeric",
	HTMLEntityHex:     "HTMLEntityHex",
	HTMLEntityEnd:     "HTMLEntityEnd",

	HeadingStart: "HeadingStart",
	HeadingEnd:   "HeadingEnd",

	CommentStart: "CommentStart",
	CommentEnd:   "CommentEnd",

	TagOpenOpen:       "TagOpenOpen",
	TagAttrStart:      "TagAttrStart",
	TagAttrEquals:     "TagAttrEquals",
	TagAttrQuote:      "TagAttrQuote",
	TagCloseOpen:      "TagCloseOpen",
	TagCloseSelfclose: "TagCloseSelfclose",
	TagOpenClose:      "TagOpenClose",
	TagCloseClose:     "TagCloseClose",

	ItalicOpen:  "ItalicOpen",
	ItalicClose: "ItalicClose",
	BoldOpen:    "BoldOpen",
	BoldClose:   "BoldClose",

	OrderedListItem:   "OrderedListItem",
	UnorderedListItem: "UnorderedListItem",
	DescriptionTerm:   "DescriptionTerm",
	DescriptionItem:   "DescriptionItem",
	HorizontalRule:    "HorizontalRule",

	TableOpen:      "TableOpen",
	TableClose:     "TableClose",
	TableRowOpen:   "TableRowOpen",
	TableRowClose:  "TableRowClose",
	TableCellOpen:  "TableCellOpen",
	TableCellClose: "TableCellClose",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsTemplate reports whether k belongs to the template token family.
func (k Kind) IsTemplate() bool { return templateBegin < k && k < templateEnd }

// IsArgument reports whether k belongs to the argument token family.
func (k Kind) IsArgument() bool { return argumentBegin < k && k < argumentEnd }

// IsWikilink reports whether k belongs to the wikilink token family.
func (k Kind) IsWikilink() bool { return wikilinkBegin < k && k < wikilinkEnd }

// IsExternalLink reports whether k belongs to the external-link token family.
func (k Kind) IsExternalLink() bool { return extLinkBegin < k && k < extLinkEnd }

// IsEntity reports whether k belongs to the HTML-entity token family.
func (k Kind) IsEntity() bool { return entityBegin < k && k < entityEnd }

// IsHeading reports whether k belongs to the heading token family.
func (k Kind) IsHeading() bool { return headingBegin < k && k < headingEnd }

// IsComment reports whether k belongs to the comment token family.
func (k Kind) IsComment() bool { return commentBegin < k && k < commentEnd }

// IsTag reports whether k belongs to the HTML-tag token family.
func (k Kind) IsTag() bool { return tagBegin < k && k < tagEnd }

// IsStyle reports whether k belongs to the italics/bold token family.
func (k Kind) IsStyle() bool { return styleBegin < k && k < styleEnd }

// IsList reports whether k belongs to the list/HR token family.
func (k Kind) IsList() bool { return listBegin < k && k < listEnd }

// IsTable reports whether k belongs to the table token family.
func (k Kind) IsTable() bool { return tableBegin < k && k < tableEnd }

// Token is a tagged variant: Kind plus whatever payload that kind carries.
// Only one of the payload fields is meaningful for a given Kind, mirroring
// the token kind's payload-by-variant table.
type Token struct {
	Kind Kind

	// Text is the borrowed string payload for Text tokens, the collected
	// literal for HTML-entity digit runs, and so on. Never shared across
	// tokens: each Token owns its own (arena-backed) string.
	Text string

	// Brackets is ExternalLinkOpen's payload: true if the link was written
	// with [ ] brackets, false for a bare free link.
	Brackets bool

	// Space is ExternalLinkSeparator's payload: true if the separator
	// between the URI and the title was a literal space.
	Space bool

	// Level is HeadingStart's payload: the heading level, 1..6.
	Level int

	// Quote is TagAttrQuote's payload: the quote character used, '"' or '\''.
	Quote rune

	// PadBefore is TagAttrStart's payload: the whitespace between the tag
	// name (or the previous attribute) and this attribute - and
	// TagAttrEquals' and
	// TagCloseOpen's and TagCloseSelfclose's payload: the whitespace
	// immediately before the "=" or the tag-closing ">"/"/>" they
	// represent. Empty when the source had no such gap.
	PadBefore string

	// PadAfter is TagAttrEquals' payload: the whitespace immediately
	// after the "=" it represents, before the attribute's value.
	PadAfter string
}

// NewText constructs a Text token. Callers must never construct a Text
// token with an empty payload; the scanner's emit primitives never flush
// an empty text buffer.
func NewText(s string) Token { return Token{Kind: Text, Text: s} }
