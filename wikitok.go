// Package wikitok drives the wikitext scanner and exposes the result as a
// plain token slice, the way callers outside package scanner are expected
// to consume it.
package wikitok

import (
	"fmt"

	"github.com/wikitext/tokenizer/internal/defs"
	"github.com/wikitext/tokenizer/scanner"
	"github.com/wikitext/tokenizer/token"
)

// Tokenizer holds the options a Tokenize call runs with. The zero value is
// ready to use.
type Tokenizer struct {
	skipStyleTags bool
	maxDepth      int
	defs          defs.Definitions
}

// Option is a functional option to change how Tokenize scans input.
type Option func(*Tokenizer)

// WithSkipStyleTags disables italics/bold apostrophe-run parsing entirely.
func WithSkipStyleTags(skip bool) Option {
	return func(tz *Tokenizer) {
		tz.skipStyleTags = skip
	}
}

// WithMaxDepth overrides the recursion limit applied to nested constructs
// (templates inside templates, wikilinks inside external link titles, and
// so on). Zero means use scanner.MaxDepth.
func WithMaxDepth(depth int) Option {
	return func(tz *Tokenizer) {
		tz.maxDepth = depth
	}
}

// WithDefinitions overrides the URI-scheme, parser-blacklist, and
// void-tag tables consulted while scanning. A nil value uses
// defs.Default{}.
func WithDefinitions(d defs.Definitions) Option {
	return func(tz *Tokenizer) {
		tz.defs = d
	}
}

// New constructs a Tokenizer, applying opts in order.
func New(opts ...Option) *Tokenizer {
	tz := &Tokenizer{}
	for _, opt := range opts {
		opt(tz)
	}
	return tz
}

// Tokenize scans src and returns its flat token stream. Malformed or
// incomplete markup never produces an error: the scanner always falls
// back to emitting the offending span as literal text, per the no-panic,
// always-something-to-render contract described in spec.md §7. A non-nil
// error here means an internal invariant was violated, not that src was
// malformed.
func Tokenize(src []byte, opts ...Option) ([]token.Token, error) {
	return New(opts...).Tokenize(src)
}

// Tokenize scans src using tz's configured options.
func (tz *Tokenizer) Tokenize(src []byte) ([]token.Token, error) {
	toks, err := scanner.Run(src, scanner.Options{
		SkipStyleTags: tz.skipStyleTags,
		Definitions:   tz.defs,
		MaxDepth:      tz.maxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("wikitok: %w", err)
	}
	return toks.Slice(), nil
}
