package scanner

import "github.com/wikitext/tokenizer/token"

const maxBraces = 255

// parseTemplateOrArgument runs on "{{". It counts the run of consecutive
// "{" (capped at maxBraces) and, working outward from the left, tries an
// argument (3 braces) then a template (2 braces), shrinking the brace
// count by the amount consumed on each success. Whatever braces are left
// over once nothing more can be matched - because the run was too short,
// or every attempt failed - are emitted as literal text.
func (st *State) parseTemplateOrArgument() {
	braces := 2
	st.head += 2
	for braces < maxBraces && st.read(0) == '{' {
		st.head++
		braces++
	}

	hasContent := false
	st.push(0)
	holder := st.top

	for braces > 0 {
		if braces == 1 {
			st.emitTextThenStack("{")
			return
		}
		if braces == 2 {
			if !st.parseTemplate(hasContent) {
				st.emitTextThenStack("{{")
				return
			}
			break
		}
		if st.parseArgument() {
			braces -= 3
		} else if st.parseTemplate(hasContent) {
			braces -= 2
		} else {
			text := make([]byte, braces)
			for i := range text {
				text[i] = '{'
			}
			st.emitTextThenStack(string(text))
			return
		}
		if braces > 0 {
			hasContent = true
		}
	}

	toks := holder.tokens
	st.top = holder.parent
	st.emitAll(toks)
	if st.top.context.Any(FailNext) {
		st.top.context = st.top.context ^ FailNext
	}
	st.head--
}

// parseTemplate attempts to parse a template name and its parameters
// starting at head, wrapping the result in TemplateOpen/TemplateClose and
// emitting it into the current (holder) frame. It reports whether the
// attempt succeeded; on failure head is restored to where it started.
func (st *State) parseTemplate(hasContent bool) bool {
	ctx := TemplateName
	if hasContent {
		ctx = ctx.Set(HasTemplate)
	}
	reset := st.head
	if !st.pushAndRun(ctx) {
		st.head = reset
		return false
	}
	content := st.pending
	st.pending = nil
	st.emit(token.Token{Kind: token.TemplateOpen})
	st.emitAll(content)
	st.emit(token.Token{Kind: token.TemplateClose})
	return true
}

// parseArgument attempts to parse an argument name and default starting
// at head, the same way parseTemplate does for templates.
func (st *State) parseArgument() bool {
	reset := st.head
	if !st.pushAndRun(ArgumentName) {
		st.head = reset
		return false
	}
	content := st.pending
	st.pending = nil
	st.emit(token.Token{Kind: token.ArgumentOpen})
	st.emitAll(content)
	st.emit(token.Token{Kind: token.ArgumentClose})
	return true
}

// startTemplateParam runs on "|" while the top frame is inside a
// template. Ending TEMPLATE_NAME requires HAS_TEXT or HAS_TEMPLATE to
// already be set; ending a value simply clears it. A param key gets a
// scratch child frame of its own so its content can be isolated and
// merged back in on the next separator (or on "="); a value accumulates
// directly in the template's own buffer.
func (st *State) startTemplateParam() {
	ctx := st.top.context
	switch {
	case ctx.Any(TemplateName):
		if !ctx.Any(HasText | HasTemplate) {
			st.failRoute()
			return
		}
		st.top.context = st.top.context.Clear(TemplateName)
	case ctx.Any(TemplateParamValue):
		st.top.context = st.top.context.Clear(TemplateParamValue)
	}

	if st.top.context.Any(TemplateParamKey) {
		toks := st.pop()
		st.emitAll(toks)
	} else {
		st.top.context = st.top.context.Set(TemplateParamKey)
	}

	st.emit(token.Token{Kind: token.TemplateParamSeparator})
	st.push(st.top.context)
}

// endTemplateParamKey runs on "=" while the top frame is a template
// param-key segment: it merges the key's content back into the template
// frame, switches to TEMPLATE_PARAM_VALUE, and emits the separator.
func (st *State) endTemplateParamKey() {
	toks := st.pop()
	st.emitAll(toks)
	st.top.context = st.top.context.Clear(TemplateParamKey).Set(TemplateParamValue)
	st.emit(token.Token{Kind: token.TemplateParamEquals})
}

// endTemplate runs on "}}" while the top frame is any part of a
// template. TEMPLATE_NAME may only close once it has seen text or a
// nested template; an open param key (no trailing "=") is merged back in
// first. The result is stashed in st.pending for parseTemplate to wrap.
func (st *State) endTemplate() {
	ctx := st.top.context
	if ctx.Any(TemplateName) {
		if !ctx.Any(HasText | HasTemplate) {
			st.failRoute()
			return
		}
	} else if ctx.Any(TemplateParamKey) {
		toks := st.pop()
		st.emitAll(toks)
	}
	st.head++
	st.pending = st.pop()
}

// startArgumentDefault runs on "|" while the top frame is an argument
// name: it switches to ARGUMENT_DEFAULT and emits the separator. Unlike
// templates, an argument's default has no further internal separators to
// track, so no scratch child frame is needed.
func (st *State) startArgumentDefault() {
	st.top.context = st.top.context.Clear(ArgumentName).Set(ArgumentDefault)
	st.emit(token.Token{Kind: token.ArgumentSeparator})
}

// endArgument runs on "}}}" while the top frame is any part of an
// argument. It advances past the extra third brace and stashes the
// popped content in st.pending for parseArgument to wrap.
func (st *State) endArgument() {
	st.head += 2
	st.pending = st.pop()
}
