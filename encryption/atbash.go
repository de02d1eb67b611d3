package encryption

// Atbash reverses the alphabet: A<->Z, B<->Y and so on
type Atbash struct{}

// NewAtbash creates an Atbash cipher
func NewAtbash() Atbash {
	return Atbash{}
}

// Encrypt mirrors every letter
func (Atbash) Encrypt(text string) string {
	return mapLetters(text, func(offset int) int {
		return alphabetSize - 1 - offset
	})
}

// Decrypt is identical to Encrypt
func (a Atbash) Decrypt(text string) string {
	return a.Encrypt(text)
}

// Algorithm returns the cipher algorithm name
func (Atbash) Algorithm() string {
	return string(EncTypeAtbash)
}
