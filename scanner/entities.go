package scanner

import (
	"strconv"

	"github.com/wikitext/tokenizer/token"
)

const maxEntitySize = 8

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// parseHTMLEntity runs on "&". It attempts to parse a full HTML entity
// reference ("&amp;", "&#39;", "&#x27;"); on any failure - an unknown
// digit run, a numeric value out of Unicode range, a missing terminating
// ";", and so on - it falls back to emitting a literal "&".
func (st *State) parseHTMLEntity() {
	reset := st.head
	if !st.checkRoute(HTMLEntity) {
		st.clearRoute()
		st.head = reset
		st.emitChar('&')
		return
	}
	st.push(HTMLEntity)
	if !st.reallyParseHTMLEntity() {
		st.clearRoute()
		st.head = reset
		st.emitChar('&')
		return
	}
	toks := st.pop()
	st.emitAll(toks)
}

// reallyParseHTMLEntity consumes the body of an entity reference up to but
// not including its terminating ";", validating it along the way. It
// reports success; on failure it has already called failRoute itself,
// popping the frame it pushed.
func (st *State) reallyParseHTMLEntity() bool {
	st.emit(token.Token{Kind: token.HTMLEntityStart})
	st.head++
	c := st.read(0)
	if c == 0 {
		st.failRoute()
		return false
	}

	numeric := false
	hexadecimal := false
	if c == '#' {
		numeric = true
		st.emit(token.Token{Kind: token.HTMLEntityNumeric})
		st.head++
		c = st.read(0)
		if c == 0 {
			st.failRoute()
			return false
		}
		if c == 'x' || c == 'X' {
			hexadecimal = true
			st.emit(token.Token{Kind: token.HTMLEntityHex})
			st.head++
		}
	}

	valid := isAlnum
	switch {
	case hexadecimal:
		valid = isHexDigit
	case numeric:
		valid = isDigit
	}

	var text []byte
	zeroes := 0
	i := 0
	for {
		c = st.read(0)
		if c == ';' {
			if i == 0 {
				st.failRoute()
				return false
			}
			break
		}
		if i == 0 && numeric && c == '0' {
			zeroes++
			st.head++
			continue
		}
		if i >= maxEntitySize || isMarker(c) || !valid(c) {
			st.failRoute()
			return false
		}
		text = append(text, c)
		st.head++
		i++
	}

	if numeric {
		base := 10
		if hexadecimal {
			base = 16
		}
		n, err := strconv.ParseInt(string(text), base, 64)
		if err != nil || n < 1 || n > 0x10FFFF {
			st.failRoute()
			return false
		}
	}

	if zeroes > 0 {
		padded := make([]byte, 0, len(text)+zeroes)
		for k := 0; k < zeroes; k++ {
			padded = append(padded, '0')
		}
		padded = append(padded, text...)
		text = padded
	}

	st.emit(token.NewText(st.arena.String(string(text))))
	st.emit(token.Token{Kind: token.HTMLEntityEnd})
	return true
}
