// Package encryption implements classical text ciphers behind a common
// Encrypt/Decrypt contract. None of them offer cryptographic security.
package encryption

import (
	apperrors "github.com/classic-encrypt-go/internal/errors"
)

// alphabetSize is the number of ASCII letters per case
const alphabetSize = 26

var (
	// ErrInvalidKey matches any error returned for a key that cannot be used
	ErrInvalidKey = apperrors.NewInvalidKey("invalid key")
	// ErrUnsupported matches any error returned for an unknown cipher type
	ErrUnsupported = apperrors.NewUnsupported("unsupported cipher type")
)

// Cipher is the contract shared by every cipher in this package.
// Both methods are total: characters a cipher cannot encode are passed
// through unchanged.
type Cipher interface {
	// Encrypt transforms plaintext into ciphertext
	Encrypt(text string) string
	// Decrypt reverses Encrypt
	Decrypt(text string) string
}

// CipherInfo provides metadata about a cipher
type CipherInfo interface {
	// Algorithm returns the cipher algorithm name
	Algorithm() string
}

// ByteCipher is implemented by ciphers that can work on raw binary data
type ByteCipher interface {
	TransformBytes(data []byte) []byte
}

// floorMod returns x mod m in [0, m) for any sign of x
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// letterBase returns the base letter for an ASCII letter's case
func letterBase(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A', true
	case c >= 'a' && c <= 'z':
		return 'a', true
	}
	return 0, false
}

func isASCIILetter(c byte) bool {
	_, ok := letterBase(c)
	return ok
}

// toUpperASCII uppercases c if it is a lowercase ASCII letter
func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// mapLetters applies f to the 0-based offset of every ASCII letter in text,
// keeping its case. f must return a value in [0, 26). All other bytes,
// including multi-byte UTF-8 sequences, are copied untouched. f is called
// in input order, so it may carry state.
func mapLetters(text string, f func(offset int) int) string {
	out := []byte(text)
	for i, c := range out {
		base, ok := letterBase(c)
		if !ok {
			continue
		}
		out[i] = base + byte(f(int(c-base)))
	}
	return string(out)
}

// shiftLetters adds shift to every letter mod 26
func shiftLetters(text string, shift int) string {
	return mapLetters(text, func(offset int) int {
		return floorMod(offset+shift, alphabetSize)
	})
}

// modInverse computes the multiplicative inverse of a modulo m with the
// extended Euclidean algorithm. ok is false when gcd(a, m) != 1.
func modInverse(a, m int) (inv int, ok bool) {
	oldR, r := floorMod(a, m), m
	oldS, s := 1, 0

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, false
	}
	return floorMod(oldS, m), true
}
