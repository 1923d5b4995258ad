// Package arena implements a bulk allocator for the byte slices and string
// copies a single tokenizer pass produces, so the scanner never performs a
// per-token free: everything dies together when the arena is reset.
package arena

// defaultSlabSize is the initial slab capacity; slabs double like
// textbuf.Buffer does, on the same growth discipline the scanner's own
// buffers use.
const defaultSlabSize = 256

// Arena is a bump allocator over a sequence of byte slabs. It is not safe
// for concurrent use: a tokenizer pass is single-threaded end to end.
type Arena struct {
	slabs   [][]byte
	cur     []byte
	slabCap int
}

// New returns an Arena ready for use.
func New() *Arena {
	return &Arena{slabCap: defaultSlabSize}
}

func (a *Arena) ensure(n int) {
	if a.cur != nil && len(a.cur)+n <= cap(a.cur) {
		return
	}
	size := a.slabCap
	for size < n {
		size *= 2
	}
	a.cur = make([]byte, 0, size)
	a.slabs = append(a.slabs, a.cur)
	a.slabCap *= 2
}

// String copies s into the arena and returns a borrowed view of the copy.
// The returned string is valid for the lifetime of the Arena.
func (a *Arena) String(s string) string {
	if s == "" {
		return ""
	}
	a.ensure(len(s))
	start := len(a.cur)
	a.cur = append(a.cur, s...)
	b := a.cur[start:len(a.cur):len(a.cur)]
	a.slabs[len(a.slabs)-1] = a.cur
	return string(b)
}

// Bytes copies b into the arena and returns a borrowed view of the copy.
func (a *Arena) Bytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	a.ensure(len(b))
	start := len(a.cur)
	a.cur = append(a.cur, b...)
	out := a.cur[start:len(a.cur):len(a.cur)]
	a.slabs[len(a.slabs)-1] = a.cur
	return out
}

// Reset discards every allocation made from the arena. This is the single
// free arena policy: nothing allocated from the arena is freed
// individually.
func (a *Arena) Reset() {
	a.slabs = nil
	a.cur = nil
}

// Slabs reports how many backing byte slices the arena currently holds,
// exposed only for diagnostics.
func (a *Arena) Slabs() int { return len(a.slabs) }
