package scanner

import "errors"

// ErrInvariant indicates an internal invariant was violated - a
// programmer error in the scanner itself, never something well-formed or
// malformed input can trigger. Route failures
// (BAD_ROUTE) are never reported this way: they are always consumed
// internally and resolved into a literal-text fallback before Run
// returns.
var ErrInvariant = errors.New("wikitok/scanner: internal invariant violation")
