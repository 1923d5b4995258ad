package scanner

import "github.com/wikitext/tokenizer/token"

// parseComment runs on "<!--". It accumulates everything up to the closing
// "-->" as plain text between CommentStart/CommentEnd tokens; an
// unterminated comment falls back to emitting the literal "<!--" and
// leaving the rest of the input untouched. Closing a comment clears
// FailNext on the enclosing context, since verifySafe sets that flag
// speculatively whenever it sees a "<" that might start a comment.
func (st *State) parseComment() {
	reset := st.head + 3
	st.head += 4
	st.push(0)

	for {
		c := st.read(0)
		if c == 0 {
			st.pop()
			st.head = reset
			st.emitText("<!--")
			return
		}
		if c == '-' && st.read(1) == '-' && st.read(2) == '>' {
			st.emitFirst(token.Token{Kind: token.CommentStart})
			st.emit(token.Token{Kind: token.CommentEnd})
			toks := st.pop()
			st.emitAll(toks)
			st.head += 2
			if st.top.context.Any(FailNext) {
				st.top.context = st.top.context ^ FailNext
			}
			return
		}
		st.emitChar(c)
		st.head++
	}
}
