package scanner

import (
	"github.com/wikitext/tokenizer/internal/routecache"
	"github.com/wikitext/tokenizer/internal/textbuf"
	"github.com/wikitext/tokenizer/internal/tokenlist"
	"github.com/wikitext/tokenizer/token"
)

// nul is the universal end-of-input sentinel read() and readBackwards()
// return past either edge of the source.
const nul = byte(0)

// Frame is a parse context: its pending token list, its text buffer, its
// context mask, and the (head, context) identity it was pushed with.
// Frames form a singly linked stack via parent.
type Frame struct {
	tokens  *tokenlist.List
	buf     *textbuf.Buffer
	context Context

	identityHead    int
	identityContext Context

	parent *Frame

	// extBracketed distinguishes a bracket-enclosed external link frame
	// ("[http://...]") from a free one (a bare "http://..." run), since
	// both share the same ExtLinkURI/ExtLinkTitle context flags.
	extBracketed bool
}

func newFrame(context Context, head int, parent *Frame) *Frame {
	return &Frame{
		tokens:          tokenlist.New(),
		buf:             textbuf.New(),
		context:         context,
		identityHead:    head,
		identityContext: context,
		parent:          parent,
	}
}

// depth reports how many frames are on the stack, root frame counted as 1.
func (f *Frame) depth() int {
	n := 0
	for p := f; p != nil; p = p.parent {
		n++
	}
	return n
}

// push allocates a new frame for context, linking it as the new top. It
// does not consult the route cache; callers must checkRoute first where
// the scanner's route-cache rules require it.
func (st *State) push(context Context) {
	st.top = newFrame(context, st.head, st.top)
}

// pushTextbuffer flushes the top frame's pending text buffer into a Text
// token, if non-empty. No-op otherwise.
func (st *State) pushTextbuffer() {
	top := st.top
	if top.buf.Len() == 0 {
		return
	}
	top.tokens.Append(token.NewText(st.arena.String(top.buf.Export())))
	top.buf.Reset()
}

// pop flushes the text buffer, unlinks the top frame, and returns its
// token list.
func (st *State) pop() *tokenlist.List {
	st.pushTextbuffer()
	top := st.top
	st.top = top.parent
	return top.tokens
}

// popKeepingContext is pop, except the popped frame's context is copied
// into the (new) top frame. The scanner does not call it: table cells are
// context bits on the table's frame, so no cell-style frame is popped.
func (st *State) popKeepingContext() *tokenlist.List {
	ctx := st.top.context
	toks := st.pop()
	st.top.context = st.top.context.Set(ctx)
	return toks
}

// failRoute records the current identity as a known-bad route, pops and
// discards the top frame's contents, and sets the route-failed flag so
// every caller up the stack can propagate the failure.
func (st *State) failRoute() {
	context := st.top.context
	st.routeCache.Insert(routecache.Key{Head: st.top.identityHead, Context: uint64(st.top.identityContext)})
	st.pop()
	st.routeFailed = true
	st.routeContext = context
}

// checkRoute reports whether (head, context) is already known to fail. If
// so it sets the route-failed flag without pushing a frame.
func (st *State) checkRoute(context Context) bool {
	if st.routeCache.Contains(routecache.Key{Head: st.head, Context: uint64(context)}) {
		st.routeFailed = true
		st.routeContext = context
		return false
	}
	return true
}

// clearRoute resets the route-failed flag. Callers invoke this once they
// have handled a BAD_ROUTE (retried an alternative, or emitted the
// literal source).
func (st *State) clearRoute() {
	st.routeFailed = false
}

// ---------------------------------------------------------------------
// Emission primitives

func (st *State) emitChar(c byte) {
	st.top.buf.Write(c)
}

func (st *State) emitText(s string) {
	st.top.buf.WriteString(s)
}

func (st *State) emit(tok token.Token) {
	st.pushTextbuffer()
	st.top.tokens.Append(tok)
}

func (st *State) emitFirst(tok token.Token) {
	st.pushTextbuffer()
	st.top.tokens.Prepend(tok)
}

func (st *State) emitTextbuffer(buf *textbuf.Buffer) {
	st.top.buf.Concat(buf)
}

// emitAll appends every token from toks into the top frame. If toks'
// first token is Text, its payload is merged into the top frame's pending
// text buffer instead of being appended as a separate token, preserving
// the no-adjacent-Text invariant across pop boundaries.
func (st *State) emitAll(toks *tokenlist.List) {
	if toks.Len() == 0 {
		return
	}
	i := 0
	if first := toks.At(0); first.Kind == token.Text {
		st.emitText(first.Text)
		i = 1
	}
	st.pushTextbuffer()
	for ; i < toks.Len(); i++ {
		st.top.tokens.Append(toks.At(i))
	}
}

// emitTextThenStack pops the current frame, emits s as literal text into
// the (new) parent, emits the popped frame's tokens into the parent, then
// decrements head by one to compensate the scanner's unconditional
// post-increment.
func (st *State) emitTextThenStack(s string) {
	toks := st.pop()
	st.emitText(s)
	st.emitAll(toks)
	st.head--
}

// ---------------------------------------------------------------------
// Read primitives

// read returns the byte at head+d, or nul past the end of input.
func (st *State) read(d int) byte {
	if st.head+d < len(st.src) {
		return st.src[st.head+d]
	}
	return nul
}

// readBackwards returns the byte at head-d, or nul before the start of
// input.
func (st *State) readBackwards(d int) byte {
	if d <= st.head {
		return st.src[st.head-d]
	}
	return nul
}
