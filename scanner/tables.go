package scanner

import "github.com/wikitext/tokenizer/token"

// parseTableStyle consumes inline attribute-ish text directly into the
// current top frame up to (but not including) endToken, supporting entity
// references. EOF before the terminator fails the route.
func (st *State) parseTableStyle(endToken byte) bool {
	for {
		c := st.read(0)
		if c == 0 {
			st.failRoute()
			return false
		}
		if c == endToken {
			return true
		}
		if c == '&' {
			st.parseHTMLEntity()
			if st.routeFailed {
				return false
			}
			st.head++
			continue
		}
		st.emitChar(c)
		st.head++
	}
}

// parseTable runs on "{|" at the start of a line. It reads the table's own
// opening-line attributes up to the first newline, then hands the
// remainder of the table - rows and cells, tracked as context bits on a
// single recursively-driven frame rather than as separately nested frames
// per row/cell - to the shared dispatch loop until a matching "|}" (or
// end of input) closes it.
func (st *State) parseTable() {
	reset := st.head
	st.head += 2
	if !st.checkRoute(TableOpen) {
		st.clearRoute()
		st.head = reset
		st.emitChar('{')
		return
	}
	st.push(TableOpen)

	if !st.parseTableStyle('\n') {
		st.clearRoute()
		st.head = reset
		st.emitChar('{')
		return
	}
	style := st.pop()
	st.head++

	if !st.pushAndRun(TableOpen) {
		st.head = reset
		st.emitChar('{')
		return
	}
	body := st.pending
	st.pending = nil

	st.emit(token.Token{Kind: token.TableOpen})
	st.emitAll(style)
	st.emitAll(body)
	st.emit(token.Token{Kind: token.TableClose})
	st.head--
}

// closeOpenTableCell emits a TableCellClose and clears the cell's line
// context if a cell is currently open on the table's frame.
func (st *State) closeOpenTableCell() {
	if !st.top.context.Any(TableCellOpen) {
		return
	}
	st.emit(token.Token{Kind: token.TableCellClose})
	st.top.context = st.top.context.Clear(TableCellOpen | TableTDLine | TableTHLine)
}

// closeOpenTableRow closes any open cell, then the row itself if one is
// open.
func (st *State) closeOpenTableRow() {
	st.closeOpenTableCell()
	if !st.top.context.Any(TableRowOpen) {
		return
	}
	st.emit(token.Token{Kind: token.TableRowClose})
	st.top.context = st.top.context.Clear(TableRowOpen)
}

// startTableRow runs on "|-" while inside an open table. It closes
// whatever row or cell was already open and starts a fresh one.
func (st *State) startTableRow() {
	st.closeOpenTableRow()
	st.emit(token.Token{Kind: token.TableRowOpen})
	st.top.context = st.top.context.Set(TableRowOpen)
	st.head++
}

// parseTableCellSeparator runs on a leading "|" (isHeader false) or "!"
// (isHeader true) while inside an open table - one that passed
// hasLeadingWhitespace at the dispatch site - and is reused by
// parseTableCellDoubleSeparator for a same-line "||"/"!!" once a td/th
// line is already open. It closes any already-open cell, opens an
// implicit row if none is open yet (MediaWiki tables permit the first
// row's "|-" to be omitted), and opens a new cell with the corresponding
// TD/TH line context.
func (st *State) parseTableCellSeparator(isHeader bool) {
	st.closeOpenTableCell()
	if !st.top.context.Any(TableRowOpen) {
		st.emit(token.Token{Kind: token.TableRowOpen})
		st.top.context = st.top.context.Set(TableRowOpen)
	}
	st.emit(token.Token{Kind: token.TableCellOpen})
	lineCtx := TableTDLine
	if isHeader {
		lineCtx = TableTHLine
	}
	st.top.context = st.top.context.Set(TableCellOpen | lineCtx)
}

// parseTableCellDoubleSeparator runs on "||" or "!!" while inside a line
// that has already opened a td/th cell; isHeader tracks which (the caller
// derives "||" from the current TableTDLine/TableTHLine bit, since it
// opens a sibling cell of the same kind, while "!!" only ever opens
// another th cell). Unlike a leading "|" or "!", this doesn't require
// leading whitespace: per Tokenizer_has_leading_whitespace's callers in
// the reference, "||"/"!!" only ever fire once TableTDLine/TableTHLine is
// already set, which itself implies an earlier marker already passed that
// check for the line. It consumes both marker bytes and closes the
// currently open cell before opening its sibling.
func (st *State) parseTableCellDoubleSeparator(isHeader bool) {
	st.head++
	st.parseTableCellSeparator(isHeader)
}

// endTable runs on "|}" while inside an open table. It closes any open row
// and cell, then pops the table's frame, stashing the result in
// st.pending for parseTable to retrieve.
func (st *State) endTable() {
	st.closeOpenTableRow()
	st.head++
	st.pending = st.pop()
}
