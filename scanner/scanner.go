// Package scanner implements the wikitext tokenizer core: a recursive,
// backtracking, context-driven scanner that turns a MediaWiki-syntax
// source string into a flat sequence of token.Token values.
//
// The scanner never uses regular expressions. Run pushes a root Frame and
// drives it with step, one byte at a time; any construct that can nest
// (templates, arguments, wikilinks, external links, tags, styles, tables)
// pushes a child Frame and recursively drives it to completion with
// runUntilPopped - most through pushAndRun - before returning success or
// failure to its caller. Table rows and cells are context bits on the
// table's frame, not frames of their own. A failed attempt unwinds to the byte offset it
// started from and falls back to emitting the consumed span as literal
// text, memoizing the failure in a routecache.Cache so that pathological
// input (runs of unmatched "[[" or "{{") never re-explores the same dead
// end twice.
package scanner

import (
	"fmt"

	"github.com/wikitext/tokenizer/internal/arena"
	"github.com/wikitext/tokenizer/internal/defs"
	"github.com/wikitext/tokenizer/internal/routecache"
	"github.com/wikitext/tokenizer/internal/tokenlist"
)

// MaxDepth bounds recursion: canRecurse must be checked before any branch
// that would push a new frame for a recursive sub-construct.
const MaxDepth = 100

// globalFlags tracks scanner-wide state that is not part of any frame's
// context - currently only whether a heading has already been opened on
// the current line.
type globalFlags struct {
	heading bool
}

// Options configures a Run call.
type Options struct {
	// SkipStyleTags disables italics/bold parsing entirely.
	SkipStyleTags bool
	// Definitions overrides the default URI-scheme/blacklist/void-tag
	// tables. A nil value uses defs.Default{}.
	Definitions defs.Definitions
	// MaxDepth overrides MaxDepth when non-zero.
	MaxDepth int
}

// State is the global tokenizer state threaded through every sub-parser:
// input, current head offset, recursion depth, the global flag set, the
// last route-failure record, the route cache, the frame stack pointer,
// and the options in effect.
type State struct {
	src  []byte
	head int

	maxDepth int

	global globalFlags

	routeFailed  bool
	routeContext Context
	routeCache   *routecache.Cache

	top *Frame

	// finalTokens holds the root frame's token list once handleEnd pops
	// it, at which point top becomes nil and runUntilPopped returns.
	finalTokens *tokenlist.List

	skipStyleTags bool
	defs          defs.Definitions
	arena         *arena.Arena

	// tagStack is scratch state for whichever HTML open tag(s) are
	// currently being scanned, one entry per nested TagOpen frame.
	tagStack []*tagData

	// pending is a scratch handoff slot: a construct's end-handler
	// (endTemplate, endArgument, and so on) stores the frame it just
	// popped here immediately before control returns to the pushAndRun
	// caller that is waiting to wrap it in Open/Close tokens.
	pending *tokenlist.List

	// pendingHeadingLevel carries the resolved heading level alongside
	// pending when a heading title frame is popped by maybeEndHeading.
	pendingHeadingLevel int
}

// Run tokenizes src and returns the root frame's token list.
func Run(src []byte, opts Options) (*tokenlist.List, error) {
	d := opts.Definitions
	if d == nil {
		d = defs.Default{}
	}
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = MaxDepth
	}

	st := &State{
		src:           src,
		routeCache:    routecache.New(),
		skipStyleTags: opts.SkipStyleTags,
		defs:          d,
		arena:         arena.New(),
		maxDepth:      maxDepth,
	}

	st.push(0)
	entry := st.top
	st.runUntilPopped(entry)

	if st.top != nil {
		return nil, fmt.Errorf("wikitok/scanner: %d frame(s) left on stack at return", st.top.depth())
	}
	return st.finalTokens, nil
}

// canRecurse reports whether the scanner may push another frame for a
// recursive sub-construct without exceeding maxDepth.
func (st *State) canRecurse() bool {
	return st.top.depth() < st.maxDepth
}

// isMarker reports whether c can begin some structural construct, or can
// end one (a space or '"' closing an external link URI). Every other
// byte is ordinary text and is simply accumulated.
func isMarker(c byte) bool {
	switch c {
	case '{', '}', '[', ']', '<', '>', '|', '=', '&', '\'', '#', '*', ';',
		':', '-', '!', '\n', ' ', '"', 0:
		return true
	}
	return false
}

// atLineStart reports whether the previous byte was '\n' or the scanner
// is at the very start of input.
func (st *State) atLineStart() bool {
	return st.head == 0 || st.readBackwards(1) == '\n'
}

// hasLeadingWhitespace reports whether head is at the start of input, just
// after a newline, or separated from the last newline only by whitespace.
// Mirrors Tokenizer_has_leading_whitespace: table row/cell markers only
// open a new construct when this holds, so a "|" or "!" in the middle of
// a cell's text falls through to ordinary literal content instead.
func (st *State) hasLeadingWhitespace() bool {
	for offset := 1; ; offset++ {
		c := st.readBackwards(offset)
		if c == 0 || c == '\n' {
			return true
		}
		if !isWikiSpace(c) {
			return false
		}
	}
}

// runUntilPopped drives step repeatedly as long as the stack has not
// unwound below entry's parent. This allows a construct to push and pop
// further scratch frames of its own above entry (template parameter
// segments, tag attributes) without ending the drive loop early: only
// entry itself (or something further down) being popped stops it. A
// construct that needs genuine recursion (a nested template, a wikilink
// title containing a template) does so through its own pushAndRun call,
// which blocks in its own nested runUntilPopped until resolved.
func (st *State) runUntilPopped(entry *Frame) {
	floor := entry.parent
	for st.top != floor {
		st.step()
	}
}

// pushAndRun pushes a new frame for ctx and drives it to completion via a
// recursive runUntilPopped call, consulting and maintaining the route
// cache along the way. It reports whether the construct completed
// successfully; on failure the frame has already been popped by
// failRoute and the route-failed flag has already been cleared, leaving
// the caller responsible for falling back to literal text (callers reset
// head and emit the consumed markers themselves).
func (st *State) pushAndRun(ctx Context) bool {
	if !st.checkRoute(ctx) {
		return false
	}
	st.push(ctx)
	entry := st.top
	st.runUntilPopped(entry)
	if st.routeFailed {
		st.clearRoute()
		return false
	}
	return true
}

// emitLiteralSpan emits src[from:head] as literal text into the current
// top frame, then backs head up by one so that step's unconditional
// post-increment lands on the first byte past the failed attempt.
func (st *State) emitLiteralSpan(from int) {
	if st.head > from {
		st.emitText(string(st.src[from:st.head]))
	}
	st.head--
}

// step runs a single iteration of the scanner against the current top
// frame and the byte at head.
func (st *State) step() {
	c := st.read(0)

	if st.top.context.Any(AggUnsafe) {
		if !st.verifySafe(c) {
			if st.top.context.Any(AggDouble) {
				st.pop()
			}
			st.failRoute()
			return
		}
	}

	if c == 0 {
		st.handleEnd()
		return
	}

	if !isMarker(c) {
		st.emitChar(c)
		st.head++
		return
	}

	if st.dispatch(c) {
		if st.routeFailed {
			return
		}
		st.head++
		return
	}

	st.emitChar(c)
	st.head++
}

// dispatch tries every construct branch in precedence order, first match
// wins. It reports whether c was consumed by a construct branch. A
// branch either fully resolves its own success/failure (pushAndRun-based
// constructs clear the route-failed flag before returning), or - for a
// frame failing against its own enclosing context, such as a heading cut
// short by a newline - leaves the route-failed flag set so the caller's
// own pushAndRun unwinds and performs the literal-text fallback.
func (st *State) dispatch(c byte) bool {
	ctx := st.top.context
	next := st.read(1)
	prev := st.readBackwards(1)

	switch {
	case c == '{' && next == '{':
		st.parseTemplateOrArgument()
		return true

	case c == '{' && next == '|' && st.atLineStart() && !ctx.Any(AggTable):
		st.parseTable()
		return true

	case c == '|' && ctx.Any(TemplateName):
		st.startTemplateParam()
		return true

	case c == '|' && ctx.Any(ArgumentName):
		st.startArgumentDefault()
		return true

	case c == '|' && ctx.Any(WikilinkTitle):
		st.startWikilinkText()
		return true

	case c == '|' && next == '}' && ctx.Any(TableOpen) && st.hasLeadingWhitespace():
		st.endTable()
		return true

	case c == '|' && next == '-' && ctx.Any(TableOpen) && st.hasLeadingWhitespace():
		st.startTableRow()
		return true

	case c == '|' && next == '|' && ctx.Any(TableTDLine|TableTHLine):
		st.parseTableCellDoubleSeparator(ctx.Any(TableTHLine))
		return true

	case c == '!' && next == '!' && ctx.Any(TableTHLine):
		st.parseTableCellDoubleSeparator(true)
		return true

	case c == '|' && ctx.Any(AggTable) && st.hasLeadingWhitespace():
		st.parseTableCellSeparator(false)
		return true

	case c == '!' && ctx.Any(TableRowOpen) && st.hasLeadingWhitespace():
		st.parseTableCellSeparator(true)
		return true

	case c == '\n' && ctx.Any(TableTDLine | TableTHLine):
		st.top.context = st.top.context.Clear(TableTDLine | TableTHLine)
		return false

	case c == '=' && st.atLineStart() && !ctx.Any(AggTemplate) && !st.global.heading:
		st.parseHeadingStart()
		return true

	case c == '=' && ctx.Any(TemplateParamKey):
		st.endTemplateParamKey()
		return true

	case c == '=' && ctx.Any(AggHeading):
		st.maybeEndHeading()
		return true

	case c == '\n' && ctx.Any(AggHeading):
		st.failRoute()
		return true

	case c == '}' && next == '}' && ctx.Any(AggTemplate):
		st.endTemplate()
		return true

	case c == '}' && next == '}' && st.read(2) == '}' && ctx.Any(AggArgument):
		st.endArgument()
		return true

	case c == '[' && next == '[' && st.canRecurse() && !ctx.Any(AggNoWikilinks):
		st.parseWikilink()
		return true

	case c == ']' && next == ']' && ctx.Any(AggWikilink):
		st.endWikilinkClose()
		return true

	case c == ']' && ctx.Any(ExtLinkURI) && st.top.extBracketed:
		st.endExternalLinkBracketNoTitle()
		return true

	case c == ']' && ctx.Any(ExtLinkTitle):
		st.endExternalLinkTitle()
		return true

	case ctx.Any(ExtLinkURI) && st.isURIEnd(c, next):
		st.handleExternalLinkURIEnd(c)
		return true

	case c == '[' && !ctx.Any(AggNoExtLinks):
		return st.parseExternalLinkBracketed()

	case c == '&':
		st.parseHTMLEntity()
		return true

	case c == '<' && next == '!' && st.read(2) == '-' && st.read(3) == '-':
		st.parseComment()
		return true

	case c == '<' && next == '/':
		return st.parseClosingOrInvalidTag()

	case c == '<' && st.canRecurse() && !ctx.Any(AggNoExtLinks):
		st.parseOpeningTag()
		return true

	case c == '>' && ctx.Any(TagClose):
		st.endClosingTag()
		return true

	case c == '\'' && next == '\'' && !st.skipStyleTags:
		st.parseStyle()
		return true

	case (c == '\n' || c == ':') && ctx.Any(DLTerm):
		st.handleDLTerm(c)
		return true

	case st.atLineStart() && (c == '#' || c == '*' || c == ';' || c == ':') && !ctx.Any(AggTable):
		st.parseListItem(c)
		return true

	case st.atLineStart() && c == '-' && next == '-' && st.read(2) == '-' && st.read(3) == '-':
		st.parseHorizontalRule()
		return true

	case c == ':' && !isMarker(prev):
		return st.parseExternalLinkFree()
	}

	return false
}
