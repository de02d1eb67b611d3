package encryption

// Caesar shifts every letter by a fixed amount
type Caesar struct {
	shift int
}

// NewCaesar creates a Caesar cipher. Negative shifts are allowed and
// normalised into [0, 26).
func NewCaesar(shift int) Caesar {
	return Caesar{shift: floorMod(shift, alphabetSize)}
}

// NewROT13 creates the Caesar cipher with shift 13
func NewROT13() Caesar {
	return NewCaesar(13)
}

// Shift returns the normalised shift
func (c Caesar) Shift() int {
	return c.shift
}

// Encrypt shifts letters forward
func (c Caesar) Encrypt(text string) string {
	return shiftLetters(text, c.shift)
}

// Decrypt shifts letters back
func (c Caesar) Decrypt(text string) string {
	return shiftLetters(text, -c.shift)
}

// Algorithm returns the cipher algorithm name
func (c Caesar) Algorithm() string {
	return string(EncTypeCaesar)
}
