// Package charset composes the ordered symbol set that candidates are drawn from.
package charset

import "strings"

// Built-in category sequences. Order within each category is significant:
// it defines enumeration order for the whole keyspace.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!@#$%^&*()-_+=<>?"
)

// Options selects which symbol categories are appended after the lowercase
// letters. Each category sequence can be overridden before composition; an
// empty override falls back to the built-in sequence.
type Options struct {
	Uppercase bool // Uppercase enables the uppercase letter category.
	Digits    bool // Digits enables the digit category.
	Special   bool // Special enables the special symbol category.

	LowercaseSet string // LowercaseSet overrides the lowercase sequence.
	UppercaseSet string // UppercaseSet overrides the uppercase sequence.
	DigitsSet    string // DigitsSet overrides the digit sequence.
	SpecialSet   string // SpecialSet overrides the special symbol sequence.
}

// Compose builds the ordered, deduplicated charset for the given options.
// Lowercase letters are always included; the optional categories are appended
// in a fixed order (uppercase, digits, special) when enabled. Duplicate
// symbols keep their first position so the enumeration order stays stable.
func Compose(opts Options) string {
	var sb strings.Builder

	seen := make(map[rune]struct{})
	appendSymbols := func(symbols string) {
		for _, r := range symbols {
			if _, ok := seen[r]; ok {
				continue
			}

			seen[r] = struct{}{}
			sb.WriteRune(r)
		}
	}

	appendSymbols(pick(opts.LowercaseSet, Lowercase))

	if opts.Uppercase {
		appendSymbols(pick(opts.UppercaseSet, Uppercase))
	}

	if opts.Digits {
		appendSymbols(pick(opts.DigitsSet, Digits))
	}

	if opts.Special {
		appendSymbols(pick(opts.SpecialSet, Special))
	}

	return sb.String()
}

// pick returns the override when set, the built-in sequence otherwise.
func pick(override, builtin string) string {
	if override != "" {
		return override
	}

	return builtin
}
