package scanner

// tagData is scratch state for one in-progress HTML open tag, pushed onto
// State.tagStack when parseOpeningTag begins and consulted by the
// attribute sub-state-machine and by handleEnd when a tag body runs out
// of input.
type tagData struct {
	name string

	// selfClosing is set once "/>" closes the opening tag itself, rather
	// than a separate close tag later in the stream.
	selfClosing bool

	// padFirst is the whitespace immediately before whichever attribute
	// (or closing ">"/"/>") comes next - between the tag name and the
	// first attribute, or between one attribute and the next - preserved
	// so the emitted tokens round-trip byte-for-byte with the source.
	padFirst string

	// padBeforeEq and padAfterEq hold the whitespace immediately before
	// and after the "=" of whichever attribute is currently being
	// scanned.
	padBeforeEq string
	padAfterEq  string

	// quote is not written by the scanner and stays 0; the quote
	// character of an attribute value travels on its TagAttrQuote token.
	quote byte
}

func newTagData(name string) *tagData {
	return &tagData{name: name}
}

// pushTag records data for a newly opened tag.
func (st *State) pushTag(td *tagData) {
	st.tagStack = append(st.tagStack, td)
}

// popTag discards the innermost tag's scratch data once its frame is
// done with it (close tag matched, or the tag turned out to be single).
func (st *State) popTag() *tagData {
	n := len(st.tagStack)
	td := st.tagStack[n-1]
	st.tagStack = st.tagStack[:n-1]
	return td
}

// topTag returns the innermost tag's scratch data.
func (st *State) topTag() *tagData {
	return st.tagStack[len(st.tagStack)-1]
}
