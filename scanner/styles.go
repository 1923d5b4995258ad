package scanner

import "github.com/wikitext/tokenizer/token"

// parseStyle runs on "''". It counts the run of apostrophes (folding a run
// longer than 5 down to exactly 5, and a run of 4 down to 3, emitting the
// excess as literal ticks first), then dispatches on the resulting count:
// 2 opens italics, 3 opens bold, 5 opens italics-and-bold together. A tick
// count that doesn't open anything here (it matches whichever style is
// already open on the enclosing frame) instead closes that frame.
func (st *State) parseStyle() {
	ctx := st.top.context
	st.head += 2
	ticks := 2
	for st.read(0) == '\'' {
		st.head++
		ticks++
	}

	if ticks > 5 {
		for i := 0; i < ticks-5; i++ {
			st.emitChar('\'')
		}
		ticks = 5
	} else if ticks == 4 {
		st.emitChar('\'')
		ticks = 3
	}

	if ctx.Any(StyleItalics) && (ticks == 2 || ticks == 5) ||
		ctx.Any(StyleBold) && (ticks == 3 || ticks == 5) {
		if ticks == 5 {
			if ctx.Any(StyleItalics) {
				st.head -= 3
			} else {
				st.head -= 2
			}
		}
		st.head--
		st.pending = st.pop()
		return
	}

	if !st.canRecurse() {
		if ticks == 3 {
			if ctx.Any(StyleSecondPass) {
				st.emitChar('\'')
				st.pending = st.pop()
				return
			}
			if ctx.Any(StyleItalics) {
				st.top.context = st.top.context.Set(StylePassAgain)
			}
		}
		for i := 0; i < ticks; i++ {
			st.emitChar('\'')
		}
		st.head--
		return
	}

	switch ticks {
	case 2:
		st.parseItalics()
	case 3:
		st.parseBold()
	default:
		st.parseItalicsAndBold()
	}
	st.head--
}

// parseItalics attempts to open and close a "''...''" span. On failure it
// either retries as a second pass (when a bold attempt nested inside the
// failed italics frame marked it StylePassAgain) or falls back to a
// literal "''".
func (st *State) parseItalics() {
	reset := st.head
	if st.pushAndRun(StyleItalics) {
		content := st.pending
		st.pending = nil
		st.emit(token.Token{Kind: token.ItalicOpen})
		st.emitAll(content)
		st.emit(token.Token{Kind: token.ItalicClose})
		return
	}
	st.head = reset
	if st.routeContext.Any(StylePassAgain) {
		if st.pushAndRun(StyleItalics | StyleSecondPass) {
			content := st.pending
			st.pending = nil
			st.emit(token.Token{Kind: token.ItalicOpen})
			st.emitAll(content)
			st.emit(token.Token{Kind: token.ItalicClose})
			return
		}
		st.head = reset
	}
	st.emitText("''")
}

// parseBold attempts to open and close a "'''...'''" span. On failure it
// falls back to a lone "'" plus a fresh italics attempt, mirroring the
// common typo of an unbalanced apostrophe run, and - when already nested
// inside an open italics frame - marks it for a StyleSecondPass retry.
func (st *State) parseBold() {
	reset := st.head
	if st.pushAndRun(StyleBold) {
		content := st.pending
		st.pending = nil
		st.emit(token.Token{Kind: token.BoldOpen})
		st.emitAll(content)
		st.emit(token.Token{Kind: token.BoldClose})
		return
	}
	st.head = reset
	ctx := st.top.context
	if ctx.Any(StyleSecondPass) {
		st.emitChar('\'')
		return
	}
	if ctx.Any(StyleItalics) {
		st.top.context = st.top.context.Set(StylePassAgain)
		st.emitText("'''")
		return
	}
	st.emitChar('\'')
	st.parseItalics()
}

// parseItalicsAndBold runs on five consecutive apostrophes, trying bold
// first (matching the reference tokenizer's preference) and falling back
// through several shapes of partially-successful nesting before finally
// giving up and emitting the run as literal text.
func (st *State) parseItalicsAndBold() {
	reset := st.head

	if st.pushAndRun(StyleBold) {
		bold := st.pending
		st.pending = nil
		reset2 := st.head
		if st.pushAndRun(StyleItalics) {
			italics := st.pending
			st.pending = nil
			st.push(0)
			st.emit(token.Token{Kind: token.BoldOpen})
			st.emitAll(bold)
			st.emit(token.Token{Kind: token.BoldClose})
			st.emitAll(italics)
			rest := st.pop()
			st.emit(token.Token{Kind: token.ItalicOpen})
			st.emitAll(rest)
			st.emit(token.Token{Kind: token.ItalicClose})
			return
		}
		st.head = reset2
		st.emitText("''")
		st.emit(token.Token{Kind: token.BoldOpen})
		st.emitAll(bold)
		st.emit(token.Token{Kind: token.BoldClose})
		return
	}
	st.head = reset

	if st.pushAndRun(StyleItalics) {
		italics := st.pending
		st.pending = nil
		reset2 := st.head
		if st.pushAndRun(StyleBold) {
			bold := st.pending
			st.pending = nil
			st.push(0)
			st.emit(token.Token{Kind: token.ItalicOpen})
			st.emitAll(italics)
			st.emit(token.Token{Kind: token.ItalicClose})
			st.emitAll(bold)
			rest := st.pop()
			st.emit(token.Token{Kind: token.BoldOpen})
			st.emitAll(rest)
			st.emit(token.Token{Kind: token.BoldClose})
			return
		}
		st.head = reset2
		st.emitText("'''")
		st.emit(token.Token{Kind: token.ItalicOpen})
		st.emitAll(italics)
		st.emit(token.Token{Kind: token.ItalicClose})
		return
	}
	st.head = reset
	st.emitText("'''''")
}
