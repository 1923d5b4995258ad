// Package routecache implements the bad-route memoization cache: the set
// of (head, context) identities already proven to fail, so the scanner
// never re-explores an exponential blowup of templates-that-look-like-
// links-that-look-like-wikilinks.
package routecache

// Key identifies a parse attempt: the head offset and context bitmask it
// started from. Context is typed as uint64 here instead of importing the
// scanner package's Context type, to keep this package free of a cyclic
// dependency on scanner; scanner.Context converts to/from uint64 directly.
type Key struct {
	Head    int
	Context uint64
}

// Cache is an unordered set of Key, kept as a hash set: the cache only ever
// tests membership, never iterates in order, so a Go map gives O(1)
// average membership without the complexity of hand-rolling a balanced
// tree. Duplicate inserts are
// idempotent, matching "the cache may over-insert; duplicates are
// ignored."
type Cache struct {
	m map[Key]struct{}
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{m: make(map[Key]struct{})}
}

// Insert records key as a known-bad route.
func (c *Cache) Insert(key Key) {
	c.m[key] = struct{}{}
}

// Contains reports whether key has already been proven to fail.
func (c *Cache) Contains(key Key) bool {
	_, ok := c.m[key]
	return ok
}

// Len reports how many routes are currently memoized.
func (c *Cache) Len() int { return len(c.m) }
