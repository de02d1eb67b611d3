package encryption

import "strings"

// Vigenere is a polyalphabetic cipher driven by a repeating keyword
type Vigenere struct {
	key []int
}

// NewVigenere creates a Vigenère cipher. Only the ASCII letters of key are
// significant; a key without letters gives the identity transform.
func NewVigenere(key string) Vigenere {
	var offsets []int
	for _, r := range strings.ToUpper(key) {
		if r >= 'A' && r <= 'Z' {
			offsets = append(offsets, int(r-'A'))
		}
	}
	return Vigenere{key: offsets}
}

// KeyLen returns the number of significant key letters
func (v Vigenere) KeyLen() int {
	return len(v.key)
}

// Encrypt adds the key letters to the plaintext letters
func (v Vigenere) Encrypt(text string) string {
	return v.transform(text, 1)
}

// Decrypt subtracts the key letters from the ciphertext letters
func (v Vigenere) Decrypt(text string) string {
	return v.transform(text, -1)
}

// Algorithm returns the cipher algorithm name
func (v Vigenere) Algorithm() string {
	return string(EncTypeVigenere)
}

// transform walks the key with a cursor that only advances on letters
func (v Vigenere) transform(text string, sign int) string {
	if len(v.key) == 0 {
		return text
	}

	cursor := 0
	return mapLetters(text, func(offset int) int {
		shift := v.key[cursor%len(v.key)]
		cursor++
		return floorMod(offset+sign*shift, alphabetSize)
	})
}
