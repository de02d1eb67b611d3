package encryption

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passphraseSalt       = "CLASSIC-XOR"
	passphraseIterations = 1000
)

// XOR combines data with a repeating key. It is its own inverse.
type XOR struct {
	key []byte
}

// NewXOR creates an XOR cipher. The key is copied; an empty key gives the
// identity transform.
func NewXOR(key []byte) XOR {
	k := make([]byte, len(key))
	copy(k, key)
	return XOR{key: k}
}

// NewXORFromString creates an XOR cipher keyed by the raw bytes of key
func NewXORFromString(key string) XOR {
	return XOR{key: []byte(key)}
}

// NewXORFromPassphrase derives a size-byte key from passphrase with
// PBKDF2-SHA256. A size of zero or less gives an empty key.
func NewXORFromPassphrase(passphrase string, size int) XOR {
	if size <= 0 {
		return XOR{}
	}
	key := pbkdf2.Key([]byte(passphrase), []byte(passphraseSalt), passphraseIterations, size, sha256.New)
	return XOR{key: key}
}

// KeyLen returns the key length in bytes
func (x XOR) KeyLen() int {
	return len(x.key)
}

// TransformBytes XORs data with the repeating key into a new slice.
// Prefer it over Encrypt when the input is binary.
func (x XOR) TransformBytes(data []byte) []byte {
	out := make([]byte, len(data))
	if len(x.key) == 0 {
		copy(out, data)
		return out
	}
	for i, b := range data {
		out[i] = b ^ x.key[i%len(x.key)]
	}
	return out
}

// Encrypt XORs the bytes of text. The result round-trips through Decrypt
// but is not guaranteed to be valid UTF-8.
func (x XOR) Encrypt(text string) string {
	return string(x.TransformBytes([]byte(text)))
}

// Decrypt is identical to Encrypt
func (x XOR) Decrypt(text string) string {
	return x.Encrypt(text)
}

// Algorithm returns the cipher algorithm name
func (x XOR) Algorithm() string {
	return string(EncTypeXOR)
}
