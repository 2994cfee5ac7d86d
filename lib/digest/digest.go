// Package digest computes the salted candidate digests for the generator.
// The algorithm set is a closed enum validated at configuration time.
package digest

import (
	"crypto/md5"  //nolint:gosec // Weak digests are the point of a rainbow table
	"crypto/sha1" //nolint:gosec // Weak digests are the point of a rainbow table
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm int

// Supported digest algorithms.
const (
	MD5 Algorithm = iota
	SHA1
	SHA256
	SHA512
)

// ErrInvalidAlgorithm is returned by ParseAlgorithm for unknown names.
var ErrInvalidAlgorithm = errors.New("invalid digest algorithm")

// ErrUnsupportedAlgorithm is returned by Sum for enum values outside the
// supported set. Unreachable after ParseAlgorithm has validated the input.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// ParseAlgorithm maps a case-insensitive algorithm name to its enum value.
// Unknown names are rejected here, at configuration time, not at hash time.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
	}
}

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Valid reports whether the value is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= MD5 && a <= SHA512
}

// Names returns the supported algorithm names for help text.
func Names() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}

// Sum returns the lowercase hexadecimal digest of salt concatenated with the
// candidate. Pure and deterministic: the same (algorithm, salt, candidate)
// triple always yields the same digest.
func Sum(alg Algorithm, salt, candidate string) (string, error) {
	payload := []byte(salt + candidate)

	switch alg {
	case MD5:
		sum := md5.Sum(payload) //nolint:gosec // Intentional weak digest support
		return hex.EncodeToString(sum[:]), nil
	case SHA1:
		sum := sha1.Sum(payload) //nolint:gosec // Intentional weak digest support
		return hex.EncodeToString(sum[:]), nil
	case SHA256:
		sum := sha256.Sum256(payload)
		return hex.EncodeToString(sum[:]), nil
	case SHA512:
		sum := sha512.Sum512(payload)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
}
