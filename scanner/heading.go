package scanner

import "github.com/wikitext/tokenizer/token"

// parseHeadingStart runs on "=" at the start of a line, outside a template
// and with no heading already open. It counts the run of "=" (capped at
// level 6) and recursively parses the title; the matching close is found
// by maybeEndHeading, which may settle on a shorter level than the opening
// run if the closing run is shorter (leftover "=" on whichever side is
// longer become literal text). A title that never closes before a
// newline or the end of input falls back to emitting the opening "="
// run as literal text.
func (st *State) parseHeadingStart() {
	reset := st.head
	st.global.heading = true
	st.head++
	best := 1
	for st.read(0) == '=' {
		best++
		st.head++
	}
	level := best
	if level > 6 {
		level = 6
	}

	if !st.pushAndRun(headingLevelMask(level)) {
		st.head = reset + best - 1
		for i := 0; i < best; i++ {
			st.emitChar('=')
		}
		st.global.heading = false
		return
	}

	content := st.pending
	st.pending = nil
	actual := st.pendingHeadingLevel

	st.emit(token.Token{Kind: token.HeadingStart, Level: actual})
	if actual < best {
		for i := 0; i < best-actual; i++ {
			st.emitChar('=')
		}
	}
	st.emitAll(content)
	st.emit(token.Token{Kind: token.HeadingEnd})
	st.global.heading = false
	st.head--
}

// maybeEndHeading runs on "=" while inside an open heading title. It counts
// the run of closing "=" and resolves the final level as the minimum of
// the opening level, the closing run length, and 6; whichever side ran
// longer contributes its extra "=" characters as literal text - on the
// closing side, into the title itself before it is popped.
func (st *State) maybeEndHeading() {
	current := headingLevel(st.top.context)
	st.head++
	best := 1
	for st.read(0) == '=' {
		best++
		st.head++
	}

	level := current
	if best < level {
		level = best
	}
	if level > 6 {
		level = 6
	}
	if best > level {
		for i := 0; i < best-level; i++ {
			st.emitChar('=')
		}
	}

	st.pendingHeadingLevel = level
	st.pending = st.pop()
	st.head--
}
