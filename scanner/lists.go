package scanner

import "github.com/wikitext/tokenizer/token"

func isListMarkerChar(c byte) bool {
	return c == '#' || c == '*' || c == ';' || c == ':'
}

// handleListMarker emits the token for a single list/description marker
// character, opening a DLTerm span for ";" so a following ":" on the same
// logical term is recognized as its paired description item.
func (st *State) handleListMarker(c byte) {
	if c == ';' {
		st.top.context = st.top.context.Set(DLTerm)
	}
	var kind token.Kind
	switch c {
	case ':':
		kind = token.DescriptionItem
	case ';':
		kind = token.DescriptionTerm
	case '#':
		kind = token.OrderedListItem
	default:
		kind = token.UnorderedListItem
	}
	st.emit(token.Token{Kind: kind})
}

// parseListItem runs on a list/description marker at the start of a line.
// It consumes the whole leading run of such markers ("##*:" is a nested
// ordered-ordered-unordered-description prefix), emitting one token per
// character.
func (st *State) parseListItem(c byte) {
	st.handleListMarker(c)
	for isListMarkerChar(st.read(1)) {
		st.head++
		st.handleListMarker(st.read(0))
	}
}

// parseHorizontalRule runs on a line-starting run of four or more "-".
func (st *State) parseHorizontalRule() {
	st.head += 3
	for st.read(1) == '-' {
		st.head++
	}
	st.emit(token.Token{Kind: token.HorizontalRule})
}

// handleDLTerm runs on "\n" or ":" while a description term is open. The
// term always closes here; a ":" additionally opens its paired
// description item, while a bare newline just ends the term as plain
// text.
func (st *State) handleDLTerm(c byte) {
	st.top.context = st.top.context.Clear(DLTerm)
	if c == ':' {
		st.handleListMarker(c)
		return
	}
	st.emitChar('\n')
}
