package scanner

import "github.com/wikitext/tokenizer/token"

// AggFail is the set of contexts that must fail (or, for a void tag
// body, finalize specially) at end of input rather than pop cleanly.
const AggFail = AggTemplate | AggArgument | AggWikilink | ExtLinkURI |
	ExtLinkTitle | AggHeading | TagOpen | TagAttr | TagBody | TagClose |
	AggStyle | AggTable

// handleEnd runs when read(0) returns the end-of-input sentinel. If the
// current frame's context is not one that must fail at end of input, it
// simply pops - for the root frame (context == 0) that pop's result
// becomes the final token list and top becomes nil, ending the scan. For
// an open tag body that ran out of input, a tag that may be void (e.g.
// "<li>" with no closing "</li>") is finalized as a self-close rather
// than failed.
// An unterminated table is tolerated too: any open row and cell are
// closed and the table itself finalizes as if "|}" had been seen. Every
// other unterminated construct fails its route, double-popping first
// where the context demands it.
func (st *State) handleEnd() {
	ctx := st.top.context

	if !ctx.Any(AggFail) {
		wasRoot := ctx == 0 && st.top.parent == nil
		toks := st.pop()
		if wasRoot {
			st.finalTokens = toks
		} else {
			st.emitAll(toks)
		}
		return
	}

	if ctx.Any(TagBody) {
		if st.top.tokens.Len() < 2 {
			st.failRoute()
			return
		}
		td := st.topTag()
		if st.defs.IsSingle(td.name) {
			st.handleSingleTagEnd()
			return
		}
		st.failRoute()
		return
	}

	if ctx.Any(TableOpen) {
		st.closeOpenTableRow()
		st.pending = st.pop()
		return
	}

	if ctx.Any(AggDouble) {
		st.pop()
	}
	st.failRoute()
}

// handleSingleTagEnd finalizes an open tag whose name may be void (e.g.
// li, td, tr) and that ran out of input before a matching close tag - the
// tag is retroactively treated as self-closing. The opening frame's
// tokens already hold TagOpenOpen, any attribute tokens, TagCloseOpen and
// the body; this pops them, appends a self-close token, and leaves the
// result in st.pending for parseOpeningTag to emit into the parent.
func (st *State) handleSingleTagEnd() {
	toks := st.pop()
	toks.Append(token.Token{Kind: token.TagCloseSelfclose})
	st.pending = toks
}
