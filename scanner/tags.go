package scanner

import (
	"strings"

	"github.com/wikitext/tokenizer/token"
)

// parseOpeningTag runs on "<" outside of an invalid context. It parses the
// tag name and attributes with a dedicated loop (mirroring the tag
// attribute sub-state machine of the reference tokenizer), then either
// finishes immediately for a self-closing or single-only tag, hands the
// body to the shared dispatch loop as ordinary nested content, or - for a
// parser-blacklisted tag name (nowiki, pre, and the like) - reads the body
// as raw text up to the matching close tag. Any failure along the way
// falls back to a literal "<".
func (st *State) parseOpeningTag() {
	reset := st.head
	if !st.checkRoute(TagOpen) {
		st.clearRoute()
		st.emitChar('<')
		return
	}
	st.push(TagOpen)
	td := newTagData("")
	st.pushTag(td)
	st.emit(token.Token{Kind: token.TagOpenOpen})
	st.head++

	if !st.parseTagNameAndAttributes(td) {
		st.popTag()
		st.pop()
		st.clearRoute()
		st.head = reset
		st.emitChar('<')
		return
	}

	if td.selfClosing {
		toks := st.pop()
		st.popTag()
		st.emitAll(toks)
		st.head--
		return
	}

	if st.defs.IsParserBlacklisted(td.name) {
		if !st.handleBlacklistedTagBody(td) {
			st.popTag()
			st.pop()
			st.clearRoute()
			st.head = reset
			st.emitChar('<')
			return
		}
		toks := st.pop()
		st.popTag()
		st.emitAll(toks)
		st.head--
		return
	}

	entry := st.top
	st.runUntilPopped(entry)
	if st.routeFailed {
		st.clearRoute()
		st.popTag()
		st.head = reset
		st.emitChar('<')
		return
	}
	toks := st.pending
	st.pending = nil
	st.popTag()
	st.emitAll(toks)
	st.head--
}

// parseTagNameAndAttributes consumes the tag name, then repeatedly either
// skips whitespace or parses one attribute, until it reaches the closing
// ">" (switching the frame over to TagBody, for the caller to drive
// further) or "/>" (marking the tag self-closing).
func (st *State) parseTagNameAndAttributes(td *tagData) bool {
	var name []byte
	for {
		c := st.read(0)
		if c == 0 {
			return false
		}
		if isMarker(c) || isWikiSpace(c) {
			break
		}
		name = append(name, c)
		st.emitChar(c)
		st.head++
	}
	if len(name) == 0 {
		return false
	}
	td.name = strings.ToLower(string(name))

	td.padFirst = st.consumeWikiSpaceRun()

	for {
		c := st.read(0)
		switch {
		case c == 0:
			return false
		case c == '>':
			pad := td.padFirst
			td.padFirst = ""
			st.emit(token.Token{Kind: token.TagCloseOpen, PadBefore: pad})
			st.head++
			if st.defs.IsSingleOnly(td.name) {
				st.emit(token.Token{Kind: token.TagCloseSelfclose})
				td.selfClosing = true
				return true
			}
			st.top.context = TagBody
			return true
		case c == '/' && st.read(1) == '>':
			pad := td.padFirst
			td.padFirst = ""
			st.emit(token.Token{Kind: token.TagCloseSelfclose, PadBefore: pad})
			td.selfClosing = true
			st.head += 2
			return true
		case isWikiSpace(c):
			td.padFirst = st.consumeWikiSpaceRun()
		default:
			if !st.parseTagAttribute() {
				return false
			}
		}
	}
}

// consumeWikiSpaceRun advances head past a run of wiki-space characters
// starting at head, returning the bytes consumed ("" if none).
func (st *State) consumeWikiSpaceRun() string {
	start := st.head
	for isWikiSpace(st.read(0)) {
		st.head++
	}
	if st.head == start {
		return ""
	}
	return string(st.src[start:st.head])
}

// parseTagAttribute parses one "name" or "name=value" attribute into its
// own scratch frame, then prepends TagAttrStart and merges it back into
// the enclosing tag frame.
func (st *State) parseTagAttribute() bool {
	td := st.topTag()
	td.padBeforeEq = ""
	td.padAfterEq = ""
	st.push(TagAttr)
	for {
		c := st.read(0)
		switch {
		case c == 0:
			st.pop()
			return false
		case c == '=':
			st.head++
			td.padAfterEq = st.consumeWikiSpaceRun()
			st.emit(token.Token{Kind: token.TagAttrEquals, PadBefore: td.padBeforeEq, PadAfter: td.padAfterEq})
			if !st.parseTagAttributeValue() {
				st.pop()
				return false
			}
			return st.finishTagAttribute(td)
		case isWikiSpace(c):
			save := st.head
			run := st.consumeWikiSpaceRun()
			if st.read(0) == '=' {
				td.padBeforeEq = run
				continue
			}
			st.head = save
			return st.finishTagAttribute(td)
		case c == '>' || (c == '/' && st.read(1) == '>'):
			return st.finishTagAttribute(td)
		case c == '&':
			st.parseHTMLEntity()
			if st.routeFailed {
				st.pop()
				return false
			}
			st.head++
		case c == '{' && st.read(1) == '{' && st.canRecurse():
			st.parseTemplateOrArgument()
			if st.routeFailed {
				st.pop()
				return false
			}
			st.head++
		default:
			st.emitChar(c)
			st.head++
		}
	}
}

// finishTagAttribute pops the scratch frame parseTagAttribute built up,
// prepends a TagAttrStart carrying whatever whitespace preceded this
// attribute (td.padFirst, consumed here so a later attribute on the same
// tag starts with none), and merges the result into the enclosing tag
// frame.
func (st *State) finishTagAttribute(td *tagData) bool {
	pad := td.padFirst
	td.padFirst = ""
	st.emitFirst(token.Token{Kind: token.TagAttrStart, PadBefore: pad})
	toks := st.pop()
	st.emitAll(toks)
	return true
}

// parseTagAttributeValue parses an attribute value, quoted or bare.
func (st *State) parseTagAttributeValue() bool {
	c := st.read(0)
	if c == '"' || c == '\'' {
		quote := c
		st.head++
		st.emit(token.Token{Kind: token.TagAttrQuote, Quote: rune(quote)})
		for {
			c = st.read(0)
			switch {
			case c == 0:
				return false
			case c == quote:
				st.head++
				return true
			case c == '&':
				st.parseHTMLEntity()
				if st.routeFailed {
					return false
				}
				st.head++
			default:
				st.emitChar(c)
				st.head++
			}
		}
	}

	for {
		c = st.read(0)
		switch {
		case c == 0 || c == '>' || isWikiSpace(c) || (c == '/' && st.read(1) == '>'):
			return true
		case c == '&':
			st.parseHTMLEntity()
			if st.routeFailed {
				return false
			}
			st.head++
		default:
			st.emitChar(c)
			st.head++
		}
	}
}

// handleBlacklistedTagBody reads the body of a parser-blacklisted tag
// (nowiki, pre, and similar) as raw text - no nested markup other than
// entities - up to a matching close tag.
func (st *State) handleBlacklistedTagBody(td *tagData) bool {
	for {
		c := st.read(0)
		next := st.read(1)
		if c == 0 {
			return false
		}
		if c == '<' && next == '/' {
			st.head += 2
			reset := st.head - 1
			var buf []byte
			matched := false
			for {
				c = st.read(0)
				if c == '>' {
					matched = strings.EqualFold(strings.TrimSpace(string(buf)), td.name)
					break
				}
				if c == 0 || c == '\n' {
					break
				}
				buf = append(buf, c)
				st.head++
			}
			if !matched {
				st.head = reset
				st.emitText("</")
				st.head++
				continue
			}
			st.emit(token.Token{Kind: token.TagOpenClose})
			st.emitText(string(buf))
			st.emit(token.Token{Kind: token.TagCloseClose})
			st.head++
			return true
		} else if c == '&' {
			st.parseHTMLEntity()
			if st.routeFailed {
				return false
			}
		} else {
			st.emitChar(c)
		}
		st.head++
	}
}

// parseClosingOrInvalidTag runs on "</". Outside of an open tag's body this
// is not a recognized construct and is left for the ordinary literal-text
// fallback; inside one it opens a TagClose frame to collect the name.
func (st *State) parseClosingOrInvalidTag() bool {
	if !st.top.context.Any(TagBody) {
		return false
	}
	if !st.checkRoute(TagClose) {
		return false
	}
	st.emit(token.Token{Kind: token.TagOpenClose})
	st.push(TagClose)
	st.head++
	return true
}

// endClosingTag runs on ">" while inside a TagClose frame. If the collected
// name matches the currently open tag (case-insensitively), the whole
// open/body/close construct finishes and its content is stashed in
// st.pending for parseOpeningTag to retrieve; a mismatched name fails the
// route instead, so the enclosing tag falls back to literal text.
func (st *State) endClosingTag() {
	closeName := strings.ToLower(strings.TrimSpace(st.top.buf.Export()))
	toks := st.pop()
	td := st.topTag()
	if closeName != td.name {
		st.failRoute()
		return
	}
	st.emitAll(toks)
	st.emit(token.Token{Kind: token.TagCloseClose})
	st.pending = st.pop()
}
