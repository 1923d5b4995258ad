package scanner_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wikitext/tokenizer/scanner"
	"github.com/wikitext/tokenizer/token"
)

func tok(k token.Kind) token.Token { return token.Token{Kind: k} }

func run(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := scanner.Run([]byte(src), scanner.Options{})
	if err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return toks.Slice()
}

// TestScenarios covers the concrete input/output pairs used as this
// scanner's testable properties.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "plain text",
			src:  "foo",
			want: []token.Token{token.NewText("foo")},
		},
		{
			name: "template",
			src:  "{{x}}",
			want: []token.Token{
				tok(token.TemplateOpen),
				token.NewText("x"),
				tok(token.TemplateClose),
			},
		},
		{
			name: "template with keyed param",
			src:  "{{x|y=z}}",
			want: []token.Token{
				tok(token.TemplateOpen),
				token.NewText("x"),
				tok(token.TemplateParamSeparator),
				token.NewText("y"),
				tok(token.TemplateParamEquals),
				token.NewText("z"),
				tok(token.TemplateClose),
			},
		},
		{
			name: "wikilink with display text",
			src:  "[[a|b]]",
			want: []token.Token{
				tok(token.WikilinkOpen),
				token.NewText("a"),
				tok(token.WikilinkSeparator),
				token.NewText("b"),
				tok(token.WikilinkClose),
			},
		},
		{
			name: "bracketed external link with title",
			src:  "[http://e.com t]",
			want: []token.Token{
				{Kind: token.ExternalLinkOpen, Brackets: true},
				token.NewText("http://e.com"),
				{Kind: token.ExternalLinkSeparator, Space: true},
				token.NewText("t"),
				tok(token.ExternalLinkClose),
			},
		},
		{
			name: "level-2 heading",
			src:  "== h ==\n",
			want: []token.Token{
				{Kind: token.HeadingStart, Level: 2},
				token.NewText(" h "),
				tok(token.HeadingEnd),
				token.NewText("\n"),
			},
		},
		{
			name: "named entity",
			src:  "&amp;",
			want: []token.Token{
				tok(token.HTMLEntityStart),
				token.NewText("amp"),
				tok(token.HTMLEntityEnd),
			},
		},
		{
			name: "unterminated template falls back to literal text",
			src:  "{{a",
			want: []token.Token{token.NewText("{{a")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Run(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

// TestNumericEntityRange exercises the documented boundary: the numeric
// references 0 and 0x110000 are out of Unicode range and fall back to a
// literal "&", while 1 and 0x10FFFF (the low and high edges of the valid
// range) parse as entities.
func TestNumericEntityRange(t *testing.T) {
	tests := []struct {
		src  string
		fail bool
	}{
		{"&#0;", true},
		{"&#1114112;", true}, // 0x110000
		{"&#1;", false},
		{"&#x10FFFF;", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := run(t, tt.src)
			if tt.fail {
				if len(got) != 1 || got[0].Kind != token.Text {
					t.Errorf("Run(%q) = %v, want a single literal Text token", tt.src, got)
				}
				return
			}
			if len(got) == 0 || got[0].Kind != token.HTMLEntityStart {
				t.Errorf("Run(%q) = %v, want a parsed entity", tt.src, got)
			}
		})
	}
}

// TestApostropheCounts exercises the tick-count boundaries: two ticks open
// italics, three open bold, five open both together.
func TestApostropheCounts(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantOpens []token.Kind
	}{
		{"two ticks open italics", "''x''", []token.Kind{token.ItalicOpen}},
		{"three ticks open bold", "'''x'''", []token.Kind{token.BoldOpen}},
		{"five ticks open both", "'''''x'''''", []token.Kind{token.BoldOpen, token.ItalicOpen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.src)
			for _, want := range tt.wantOpens {
				found := false
				for _, k := range got {
					if k.Kind == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Run(%q) = %v, want a %v token", tt.src, got, want)
				}
			}
		})
	}
}

// TestFourApostrophesFoldsToThreeWithLeadingTick exercises the fold-down
// boundary: a run of four ticks emits one literal tick before bold opens,
// rather than being read as a malformed five-or-two-tick run.
func TestFourApostrophesFoldsToThreeWithLeadingTick(t *testing.T) {
	src := "''''x'''"
	got := run(t, src)
	if len(got) == 0 || got[0].Kind != token.Text || got[0].Text != "'" {
		t.Fatalf("Run(%q) = %v, want a leading literal \"'\"", src, got)
	}
	foundBold := false
	for _, tk := range got {
		if tk.Kind == token.BoldOpen {
			foundBold = true
		}
	}
	if !foundBold {
		t.Errorf("Run(%q) = %v, want a BoldOpen token", src, got)
	}
}

// TestHorizontalRule exercises the line-start boundary: a run of four or
// more "-" collapses to exactly one HorizontalRule token, consuming the
// whole run rather than just the first four dashes.
func TestHorizontalRule(t *testing.T) {
	src := "------"
	want := []token.Token{tok(token.HorizontalRule)}
	got := run(t, src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

// TestTableRowsAndCells exercises table row/cell open-close pairing,
// including the implicit first row MediaWiki permits when a table's first
// "|-" is omitted.
func TestTableRowsAndCells(t *testing.T) {
	src := "{|\n|a\n|b\n|}"
	got := run(t, src)
	var kinds []token.Kind
	for _, tk := range got {
		kinds = append(kinds, tk.Kind)
	}
	want := []token.Kind{
		token.TableOpen,
		token.TableRowOpen,
		token.TableCellOpen,
		token.Text,
		token.TableCellClose,
		token.TableCellOpen,
		token.Text,
		token.TableCellClose,
		token.TableRowClose,
		token.TableClose,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Run(%q) kind sequence mismatch (-want +got):\n%s", src, diff)
	}
}

// TestTableDoubledCellSeparator exercises MediaWiki's same-line multi-cell
// syntax: "||" splits a td line into two sibling cells without an
// intervening "|-" or newline.
func TestTableDoubledCellSeparator(t *testing.T) {
	src := "{|\n|a||b\n|}"
	got := run(t, src)
	var kinds []token.Kind
	for _, tk := range got {
		kinds = append(kinds, tk.Kind)
	}
	want := []token.Kind{
		token.TableOpen,
		token.TableRowOpen,
		token.TableCellOpen,
		token.Text,
		token.TableCellClose,
		token.TableCellOpen,
		token.Text,
		token.TableCellClose,
		token.TableRowClose,
		token.TableClose,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Run(%q) kind sequence mismatch (-want +got):\n%s", src, diff)
	}
}

// TestTableMidCellPipeStaysLiteral exercises a single "|" that isn't at
// (leading-whitespace-adjusted) line start: it must stay as literal cell
// text rather than opening a new cell.
func TestTableMidCellPipeStaysLiteral(t *testing.T) {
	src := "{|\n|a|b\n|}"
	got := run(t, src)
	want := []token.Token{
		tok(token.TableOpen),
		tok(token.TableRowOpen),
		tok(token.TableCellOpen),
		token.NewText("a|b"),
		tok(token.TableCellClose),
		tok(token.TableRowClose),
		tok(token.TableClose),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

// TestTagSelfClose exercises a void tag (one defs marks IsSingleOnly)
// finalizing as self-closing from a bare ">", without ever entering
// tag-body parsing.
func TestTagSelfClose(t *testing.T) {
	src := "<br>"
	want := []token.Token{
		tok(token.TagOpenOpen),
		token.NewText("br"),
		tok(token.TagCloseOpen),
		tok(token.TagCloseSelfclose),
	}
	got := run(t, src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

// TestBlacklistedTagBody exercises a parser-blacklisted tag (nowiki): its
// body is read as raw text, with no nested markup recognized.
func TestBlacklistedTagBody(t *testing.T) {
	src := "<nowiki>{{x}}</nowiki>"
	got := run(t, src)
	for _, tk := range got {
		if tk.Kind == token.TemplateOpen {
			t.Fatalf("Run(%q) = %v, nowiki body must not parse nested markup", src, got)
		}
	}
	foundText := false
	for _, tk := range got {
		if tk.Kind == token.Text && tk.Text == "{{x}}" {
			foundText = true
		}
	}
	if !foundText {
		t.Errorf("Run(%q) = %v, want the body preserved as literal text", src, got)
	}
}

// TestMismatchedCloseTagFallsBackToLiteral exercises a closing tag whose
// name doesn't match the open tag: the whole construct falls back to
// literal text rather than silently mismatching.
func TestMismatchedCloseTagFallsBackToLiteral(t *testing.T) {
	src := "<b>x</i>"
	got := run(t, src)
	for _, tk := range got {
		if tk.Kind == token.TagCloseClose {
			t.Fatalf("Run(%q) = %v, mismatched close tag must not finalize the construct", src, got)
		}
	}
}

// TestNoAdjacentTextTokens exercises the merge invariant: emitAll always
// flushes a merged leading Text token immediately, so two Text tokens
// never end up adjacent in the final stream regardless of how many
// frames were merged to produce it.
func TestNoAdjacentTextTokens(t *testing.T) {
	inputs := []string{
		"{{x|y=z}}",
		"[[a|b]]",
		"[http://e.com t]",
		"plain {{x}} plain",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			toks := run(t, src)
			for i := 1; i < len(toks); i++ {
				if toks[i-1].Kind == token.Text && toks[i].Kind == token.Text {
					t.Errorf("Run(%q) has adjacent Text tokens at %d,%d: %q, %q",
						src, i-1, i, toks[i-1].Text, toks[i].Text)
				}
			}
		})
	}
}
