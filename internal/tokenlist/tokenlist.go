// Package tokenlist implements the growable ordered sequence of tokens a
// parse frame collects before it is popped into its parent.
package tokenlist

import "github.com/wikitext/tokenizer/token"

// Status is the result of a Pop/PopFirst call.
type Status int

const (
	Good Status = iota
	NotFound
)

// List is a growable, ordered sequence of token.Token values. It grows by
// doubling like textbuf.Buffer; append is O(1) amortized, Prepend and
// PopFirst are O(n) and rarely used (Prepend only by emitFirst; the
// scanner never calls PopFirst).
type List struct {
	toks []token.Token
}

// New returns an empty List.
func New() *List {
	return &List{toks: make([]token.Token, 0, 8)}
}

// Append adds tok to the tail.
func (l *List) Append(tok token.Token) {
	l.toks = append(l.toks, tok)
}

// Prepend adds tok to the head, shifting every existing element.
func (l *List) Prepend(tok token.Token) {
	l.toks = append(l.toks, token.Token{})
	copy(l.toks[1:], l.toks[:len(l.toks)-1])
	l.toks[0] = tok
}

// Pop removes and returns the tail token.
func (l *List) Pop() (token.Token, Status) {
	if len(l.toks) == 0 {
		return token.Token{}, NotFound
	}
	tok := l.toks[len(l.toks)-1]
	l.toks = l.toks[:len(l.toks)-1]
	return tok, Good
}

// PopFirst removes and returns the head token.
func (l *List) PopFirst() (token.Token, Status) {
	if len(l.toks) == 0 {
		return token.Token{}, NotFound
	}
	tok := l.toks[0]
	l.toks = l.toks[1:]
	return tok, Good
}

// Len reports the number of tokens currently held.
func (l *List) Len() int { return len(l.toks) }

// At returns the token at index i.
func (l *List) At(i int) token.Token { return l.toks[i] }

// Slice returns the tokens as a plain slice, in order. The returned slice
// aliases the list's backing array; callers must not mutate it.
func (l *List) Slice() []token.Token { return l.toks }

// Extend appends every token from other, in order.
func (l *List) Extend(other *List) {
	l.toks = append(l.toks, other.toks...)
}
