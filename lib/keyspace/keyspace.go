// Package keyspace enumerates every candidate string over a charset within a
// length range, lazily and in a fixed deterministic order: lengths ascending,
// lexicographic over the charset's own symbol order within each length.
package keyspace

import (
	"errors"
	"math"
	"sync/atomic"
)

// ErrKeyspaceTooLarge is returned when the total candidate count does not fit
// in a uint64 index, which the concurrent cursor depends on.
var ErrKeyspaceTooLarge = errors.New("keyspace exceeds uint64 index range")

// ErrEmptyCharset is returned when the charset contains no symbols.
var ErrEmptyCharset = errors.New("charset is empty")

// ErrInvalidLengthRange is returned when the length bounds are not positive
// or the minimum exceeds the maximum.
var ErrInvalidLengthRange = errors.New("invalid length range")

// Keyspace describes the candidate space for one charset and length range.
// The space is never materialized; candidates are decoded on demand from a
// global index, so memory stays constant regardless of the space size.
type Keyspace struct {
	symbols []rune
	minLen  int
	maxLen  int

	// lengthCounts[i] is |charset|^(minLen+i), the block size for one length.
	lengthCounts []uint64
	total        uint64
}

// New builds a Keyspace over the given charset and inclusive length range.
// The per-length block sizes and the closed-form total are computed up front;
// an overflow of the uint64 index space is rejected with ErrKeyspaceTooLarge.
func New(charset string, minLen, maxLen int) (*Keyspace, error) {
	if charset == "" {
		return nil, ErrEmptyCharset
	}

	if minLen < 1 || maxLen < 1 || minLen > maxLen {
		return nil, ErrInvalidLengthRange
	}

	symbols := []rune(charset)
	base := uint64(len(symbols))

	lengthCounts := make([]uint64, 0, maxLen-minLen+1)

	var total uint64

	count := uint64(1)
	for length := 1; length <= maxLen; length++ {
		if count > math.MaxUint64/base {
			return nil, ErrKeyspaceTooLarge
		}

		count *= base

		if length < minLen {
			continue
		}

		if total > math.MaxUint64-count {
			return nil, ErrKeyspaceTooLarge
		}

		total += count
		lengthCounts = append(lengthCounts, count)
	}

	return &Keyspace{
		symbols:      symbols,
		minLen:       minLen,
		maxLen:       maxLen,
		lengthCounts: lengthCounts,
		total:        total,
	}, nil
}

// Total returns the number of candidates in the space without enumerating
// them: the sum of |charset|^L for every L in the length range.
func (k *Keyspace) Total() uint64 {
	return k.total
}

// MinLength returns the inclusive lower length bound.
func (k *Keyspace) MinLength() int {
	return k.minLen
}

// MaxLength returns the inclusive upper length bound.
func (k *Keyspace) MaxLength() int {
	return k.maxLen
}

// CandidateAt decodes the candidate at global index i. Indexes run from 0 to
// Total()-1, shorter lengths first. Within a length block the offset is read
// as a base-|charset| number, most significant symbol first, which yields
// lexicographic order over the charset's symbol order.
func (k *Keyspace) CandidateAt(i uint64) string {
	length := k.minLen
	for _, blockSize := range k.lengthCounts {
		if i < blockSize {
			break
		}

		i -= blockSize
		length++
	}

	base := uint64(len(k.symbols))
	buf := make([]rune, length)

	for pos := length - 1; pos >= 0; pos-- {
		buf[pos] = k.symbols[i%base]
		i /= base
	}

	return string(buf)
}

// Cursor returns a fresh concurrent cursor positioned at the start of the
// space. Multiple workers may pull from one cursor; each candidate is
// delivered to exactly one of them.
func (k *Keyspace) Cursor() *Cursor {
	return &Cursor{space: k}
}

// Cursor is a shared pull-based iterator over a Keyspace. Each Next call
// claims the next global index atomically, so concurrent consumers never see
// duplicates or omissions.
type Cursor struct {
	space *Keyspace
	next  atomic.Uint64
}

// Next returns the next unclaimed candidate. The second return value is false
// once the space is exhausted.
func (c *Cursor) Next() (string, bool) {
	i := c.next.Add(1) - 1
	if i >= c.space.total {
		return "", false
	}

	return c.space.CandidateAt(i), true
}

// All returns a sequential iterator over every candidate in order. It exists
// for single-consumer paths and tests; concurrent consumers use Cursor.
func (k *Keyspace) All() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for i := uint64(0); i < k.total; i++ {
			if !yield(k.CandidateAt(i)) {
				return
			}
		}
	}
}
