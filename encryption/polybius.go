package encryption

import (
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	polybiusSize = 5
	// standardAlphabet is A-Z with J merged into I
	standardAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
)

// Polybius encodes each letter as its 1-based row and column in a 5x5 grid.
//
// Standard grid:
//
//	  1 2 3 4 5
//	1 A B C D E
//	2 F G H I K
//	3 L M N O P
//	4 Q R S T U
//	5 V W X Y Z
type Polybius struct {
	grid      [polybiusSize][polybiusSize]rune
	separator string
}

// NewPolybius creates a Polybius square with the standard alphabet
func NewPolybius() Polybius {
	return NewPolybiusWithAlphabet(standardAlphabet)
}

// NewPolybiusWithAlphabet lays a custom alphabet row-major into the grid.
// The alphabet is uppercased and must then hold exactly 25 unique
// characters; anything else silently yields the standard grid.
func NewPolybiusWithAlphabet(alphabet string) Polybius {
	chars := []rune(strings.ToUpper(alphabet))
	if !validGridAlphabet(chars) {
		log.Debug().
			Str("alphabet", alphabet).
			Int("length", len(chars)).
			Msg("Invalid Polybius alphabet, using standard grid")
		chars = []rune(standardAlphabet)
	}

	var p Polybius
	for i, c := range chars {
		p.grid[i/polybiusSize][i%polybiusSize] = c
	}
	return p
}

// NewPolybiusWithKey builds a keyed grid: the letters of key (J folded into
// I, duplicates dropped) followed by the remaining letters in order.
func NewPolybiusWithKey(key string) Polybius {
	var seen [alphabetSize]bool
	var b strings.Builder
	b.Grow(polybiusSize * polybiusSize)

	for _, r := range strings.ToUpper(key) + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		if r < 'A' || r > 'Z' {
			continue
		}
		if r == 'J' {
			r = 'I'
		}
		if !seen[r-'A'] {
			seen[r-'A'] = true
			b.WriteRune(r)
		}
	}
	return NewPolybiusWithAlphabet(b.String())
}

func validGridAlphabet(chars []rune) bool {
	if len(chars) != polybiusSize*polybiusSize {
		return false
	}
	seen := make(map[rune]struct{}, len(chars))
	for _, c := range chars {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// WithSeparator returns a copy that writes sep between consecutive
// coordinate pairs
func (p Polybius) WithSeparator(sep string) Polybius {
	p.separator = sep
	return p
}

// Separator returns the configured separator
func (p Polybius) Separator() string {
	return p.separator
}

// Alphabet returns the grid contents in row-major order
func (p Polybius) Alphabet() string {
	var b strings.Builder
	for _, row := range p.grid {
		for _, c := range row {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Algorithm returns the cipher algorithm name
func (p Polybius) Algorithm() string {
	return string(EncTypePolybius)
}

// locate finds c in the grid, trying the letter itself before folding J to I
func (p Polybius) locate(c byte) (row, col int, ok bool) {
	upper := rune(toUpperASCII(c))
	if row, col, ok = p.find(upper); ok || upper != 'J' {
		return row, col, ok
	}
	return p.find('I')
}

func (p Polybius) find(r rune) (row, col int, ok bool) {
	for i, cells := range p.grid {
		for j, c := range cells {
			if c == r {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Encrypt replaces every letter with its two-digit coordinate. Other
// characters, and letters missing from a custom grid, are copied as is.
func (p Polybius) Encrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)

	prevCoord := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isASCIILetter(c) {
			if row, col, ok := p.locate(c); ok {
				if prevCoord {
					b.WriteString(p.separator)
				}
				b.WriteByte(byte('1' + row))
				b.WriteByte(byte('1' + col))
				prevCoord = true
				continue
			}
		}
		b.WriteByte(c)
		prevCoord = false
	}
	return b.String()
}

// Decrypt reads digit runs two at a time as row/column pairs. Separators
// are dropped, other characters are copied, and a dangling digit or an
// out-of-grid pair is discarded.
func (p Polybius) Decrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text) / 2)

	for i := 0; i < len(text); {
		if p.separatorAt(text, i) {
			i += len(p.separator)
			continue
		}

		if isDigit(text[i]) {
			j := i
			for j < len(text) && isDigit(text[j]) && !p.separatorAt(text, j) {
				j++
			}
			p.decodeRun(&b, text[i:j])
			i = j
			continue
		}

		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

func (p Polybius) separatorAt(text string, i int) bool {
	return p.separator != "" && strings.HasPrefix(text[i:], p.separator)
}

func (p Polybius) decodeRun(b *strings.Builder, run string) {
	for k := 0; k+1 < len(run); k += 2 {
		row, col := int(run[k])-'1', int(run[k+1])-'1'
		if row < 0 || row >= polybiusSize || col < 0 || col >= polybiusSize {
			continue
		}
		b.WriteRune(p.grid[row][col])
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
