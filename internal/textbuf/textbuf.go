// Package textbuf implements the growable byte buffer a parse frame uses
// to accumulate unemitted text between structural tokens.
package textbuf

const initialCap = 32

// Buffer is a growable byte buffer owned by exactly one frame. It grows by
// doubling, starting from initialCap, and never shrinks on Reset -
// capacity is retained across resets to avoid reallocating on every frame.
type Buffer struct {
	b []byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{b: make([]byte, 0, initialCap)}
}

// Write appends a single byte.
func (t *Buffer) Write(ch byte) {
	t.b = append(t.b, ch)
}

// WriteString appends every byte of s.
func (t *Buffer) WriteString(s string) {
	t.b = append(t.b, s...)
}

// Read returns the byte at index i without bounds checking, matching
// callers are expected to only call this with i < Len().
func (t *Buffer) Read(i int) byte {
	return t.b[i]
}

// Len reports the number of bytes currently buffered.
func (t *Buffer) Len() int { return len(t.b) }

// Concat appends another buffer's contents, then the spec requires the
// caller discard the source buffer (emit_textbuffer in §4.4 does this).
func (t *Buffer) Concat(other *Buffer) {
	t.b = append(t.b, other.b...)
}

// Reset truncates the buffer to empty, retaining its backing capacity.
func (t *Buffer) Reset() {
	t.b = t.b[:0]
}

// Reverse reverses the buffered bytes in place. This realizes
// Textbuffer_reverse, left unimplemented in the original C tokenizer. The
// scanner does not call it: free external link scheme extraction reads
// the buffered scheme forward with Read.
func (t *Buffer) Reverse() {
	for i, j := 0, len(t.b)-1; i < j; i, j = i+1, j-1 {
		t.b[i], t.b[j] = t.b[j], t.b[i]
	}
}

// Export returns a copy of the buffered contents as a string.
func (t *Buffer) Export() string {
	if len(t.b) == 0 {
		return ""
	}
	return string(t.b)
}
