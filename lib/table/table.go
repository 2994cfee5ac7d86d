// Package table holds the digest-to-plaintext rainbow table and its on-disk
// serializers. The engine owns synchronization; Table itself is a plain map
// wrapper and must only be mutated under the engine's aggregation lock.
package table

// Table maps lowercase hex digests to the plaintext that produced them.
// Keys are not guaranteed unique across distinct candidates: on a digest
// collision the most recently written candidate wins, and because writes are
// concurrent the winner depends on consumption order. That nondeterminism is
// accepted and documented; it does not affect lookup correctness.
type Table struct {
	entries map[string]string
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]string)}
}

// Put records the plaintext for a digest, overwriting any previous entry.
// Callers must hold the engine's aggregation lock.
func (t *Table) Put(digest, plaintext string) {
	t.entries[digest] = plaintext
}

// Lookup returns the plaintext recorded for a digest.
func (t *Table) Lookup(digest string) (string, bool) {
	plaintext, ok := t.entries[digest]

	return plaintext, ok
}

// Len returns the number of distinct digests in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries exposes the underlying map for serialization. The table is
// immutable once reporting begins; callers must not modify the result.
func (t *Table) Entries() map[string]string {
	return t.entries
}
