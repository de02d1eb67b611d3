package encryption

import (
	"fmt"
)

// Affine implements E(x) = (a*x + b) mod 26 and D(x) = a⁻¹(x - b) mod 26
type Affine struct {
	a    int
	aInv int
	b    int
}

// NewAffine creates an Affine cipher. a must be coprime with 26, otherwise
// the returned error matches ErrInvalidKey.
func NewAffine(a, b int) (Affine, error) {
	aInv, ok := modInverse(a, alphabetSize)
	if !ok {
		return Affine{}, fmt.Errorf("affine: a=%d has no inverse mod %d: %w", a, alphabetSize, ErrInvalidKey)
	}
	return Affine{
		a:    floorMod(a, alphabetSize),
		aInv: aInv,
		b:    floorMod(b, alphabetSize),
	}, nil
}

// NewAffineCaesar creates the a=1 special case, which is a Caesar shift
func NewAffineCaesar(shift int) Affine {
	return Affine{a: 1, aInv: 1, b: floorMod(shift, alphabetSize)}
}

// NewAffineROT13 creates the a=1, b=13 special case
func NewAffineROT13() Affine {
	return NewAffineCaesar(13)
}

// Keys returns the normalised a and b
func (c Affine) Keys() (a, b int) {
	return c.a, c.b
}

// Encrypt applies (a*x + b) mod 26 to every letter
func (c Affine) Encrypt(text string) string {
	return mapLetters(text, func(x int) int {
		return floorMod(c.a*x+c.b, alphabetSize)
	})
}

// Decrypt applies a⁻¹(x - b) mod 26 to every letter
func (c Affine) Decrypt(text string) string {
	return mapLetters(text, func(x int) int {
		return floorMod(c.aInv*(x-c.b), alphabetSize)
	})
}

// Algorithm returns the cipher algorithm name
func (c Affine) Algorithm() string {
	return string(EncTypeAffine)
}
