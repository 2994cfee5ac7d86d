package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCompose tests the Compose function.
func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "all categories disabled yields lowercase only",
			opts:     Options{},
			expected: Lowercase,
		},
		{
			name:     "uppercase appended after lowercase",
			opts:     Options{Uppercase: true},
			expected: Lowercase + Uppercase,
		},
		{
			name:     "digits appended after lowercase",
			opts:     Options{Digits: true},
			expected: Lowercase + Digits,
		},
		{
			name:     "category order is lowercase, uppercase, digits, special",
			opts:     Options{Uppercase: true, Digits: true, Special: true},
			expected: Lowercase + Uppercase + Digits + Special,
		},
		{
			name:     "special without digits skips the digit block",
			opts:     Options{Special: true},
			expected: Lowercase + Special,
		},
		{
			name:     "lowercase override replaces the built-in sequence",
			opts:     Options{LowercaseSet: "abc"},
			expected: "abc",
		},
		{
			name:     "duplicates keep their first position",
			opts:     Options{LowercaseSet: "abc", Digits: true, DigitsSet: "b12"},
			expected: "abc12",
		},
		{
			name:     "duplicate symbols within one category are dropped",
			opts:     Options{LowercaseSet: "aabbc"},
			expected: "abc",
		},
		{
			name:     "empty override falls back to the built-in sequence",
			opts:     Options{Uppercase: true, UppercaseSet: ""},
			expected: Lowercase + Uppercase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compose(tt.opts))
		})
	}
}

// TestComposeOrderIsStable verifies composition is deterministic, since the
// charset order defines the enumeration order of the whole keyspace.
func TestComposeOrderIsStable(t *testing.T) {
	opts := Options{Uppercase: true, Digits: true, Special: true}

	first := Compose(opts)
	for range 10 {
		assert.Equal(t, first, Compose(opts))
	}
}
