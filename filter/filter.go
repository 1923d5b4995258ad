// Package filter evaluates a user-supplied boolean expression against
// each token in a stream, for cmd/wikitok --filter.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/wikitext/tokenizer/token"
)

// Env is the per-token environment a filter expression is compiled and
// evaluated against. Fields mirror token.Token's payload names directly
// so an expression like `Kind == "TemplateOpen" || Level > 2` reads
// naturally, and Depth/Index give callers context a bare token.Token
// doesn't carry on its own.
type Env struct {
	Kind      string
	Text      string
	Brackets  bool
	Space     bool
	Level     int
	PadBefore string
	PadAfter  string
	// Index is this token's position in the stream.
	Index int
	// Depth is the nesting depth implied by how many Open tokens of any
	// kind have been seen up to and including this one, minus the Close
	// tokens seen before this one; a Close token reports the same depth
	// as the Open token it closes.
	Depth int
}

// Filter is a compiled expression ready to run against a token stream.
type Filter struct {
	program *vm.Program
}

// Compile parses and compiles expr, reporting a compile error immediately
// rather than at first use.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", src, err)
	}
	return &Filter{program: program}, nil
}

// Run evaluates f against every token in toks, in order, and returns the
// subsequence for which the expression was true.
func (f *Filter) Run(toks []token.Token) ([]token.Token, error) {
	var out []token.Token
	depth := 0
	for i, tok := range toks {
		if isOpen(tok.Kind) {
			depth++
		}
		env := Env{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Brackets:  tok.Brackets,
			Space:     tok.Space,
			Level:     tok.Level,
			PadBefore: tok.PadBefore,
			PadAfter:  tok.PadAfter,
			Index:     i,
			Depth:     depth,
		}
		if isClose(tok.Kind) {
			depth--
		}
		res, err := expr.Run(f.program, env)
		if err != nil {
			return nil, fmt.Errorf("filter: eval token %d: %w", i, err)
		}
		if keep, ok := res.(bool); ok && keep {
			out = append(out, tok)
		}
	}
	return out, nil
}

// isOpen reports whether kind opens a nesting construct, for Depth
// bookkeeping.
func isOpen(kind token.Kind) bool {
	switch kind {
	case token.TemplateOpen, token.ArgumentOpen, token.WikilinkOpen,
		token.ExternalLinkOpen, token.TagOpenOpen, token.TableOpen,
		token.TableRowOpen, token.TableCellOpen:
		return true
	}
	return false
}

// isClose reports whether kind closes a nesting construct opened by
// isOpen.
func isClose(kind token.Kind) bool {
	switch kind {
	case token.TemplateClose, token.ArgumentClose, token.WikilinkClose,
		token.ExternalLinkClose, token.TagCloseClose, token.TagCloseSelfclose,
		token.TableClose, token.TableRowClose, token.TableCellClose:
		return true
	}
	return false
}
