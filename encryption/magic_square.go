package encryption

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Planet selects one of the seven classical planetary magic squares
type Planet int

const (
	Saturn  Planet = iota // 3x3
	Jupiter               // 4x4
	Mars                  // 5x5
	Sun                   // 6x6
	Venus                 // 7x7
	Mercury               // 8x8
	Moon                  // 9x9
)

var planetNames = [...]string{"saturn", "jupiter", "mars", "sun", "venus", "mercury", "moon"}

// planetSquares holds the fixed squares indexed by Planet
var planetSquares = [...][][]int{
	Saturn: {
		{2, 7, 6},
		{9, 5, 1},
		{4, 3, 8},
	},
	Jupiter: {
		{4, 14, 15, 1},
		{9, 7, 6, 12},
		{5, 11, 10, 8},
		{16, 2, 3, 13},
	},
	Mars: {
		{11, 24, 7, 20, 3},
		{4, 12, 25, 8, 16},
		{17, 5, 13, 21, 9},
		{10, 18, 1, 14, 22},
		{23, 6, 19, 2, 15},
	},
	Sun: {
		{6, 32, 3, 34, 35, 1},
		{7, 11, 27, 28, 8, 30},
		{19, 14, 16, 15, 23, 24},
		{18, 20, 22, 21, 17, 13},
		{25, 29, 10, 9, 26, 12},
		{36, 5, 33, 4, 2, 31},
	},
	Venus: {
		{22, 47, 16, 41, 10, 35, 4},
		{5, 23, 48, 17, 42, 11, 29},
		{30, 6, 24, 49, 18, 36, 12},
		{13, 31, 7, 25, 43, 19, 37},
		{38, 14, 32, 1, 26, 44, 20},
		{21, 39, 8, 33, 2, 27, 45},
		{46, 15, 40, 9, 34, 3, 28},
	},
	Mercury: {
		{8, 58, 59, 5, 4, 62, 63, 1},
		{49, 15, 14, 52, 53, 11, 10, 56},
		{41, 23, 22, 44, 45, 19, 18, 48},
		{32, 34, 35, 29, 28, 38, 39, 25},
		{40, 26, 27, 37, 36, 30, 31, 33},
		{17, 47, 46, 20, 21, 43, 42, 24},
		{9, 55, 54, 12, 13, 51, 50, 16},
		{64, 2, 3, 61, 60, 6, 7, 57},
	},
	Moon: {
		{37, 78, 29, 70, 21, 62, 13, 54, 5},
		{6, 38, 79, 30, 71, 22, 63, 14, 46},
		{47, 7, 39, 80, 31, 72, 23, 55, 15},
		{16, 48, 8, 40, 81, 32, 64, 24, 56},
		{57, 17, 49, 9, 41, 73, 33, 65, 25},
		{26, 58, 18, 50, 1, 42, 74, 34, 66},
		{67, 27, 59, 10, 51, 2, 43, 75, 35},
		{36, 68, 19, 60, 11, 52, 3, 44, 76},
		{77, 28, 69, 20, 61, 12, 53, 4, 45},
	},
}

// Planets returns every planet from the smallest square to the largest
func Planets() []Planet {
	return []Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}
}

// ParsePlanet looks a planet up by name, ignoring case
func ParsePlanet(name string) (Planet, error) {
	for i, n := range planetNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", name)
}

func (p Planet) valid() bool {
	return p >= Saturn && p <= Moon
}

// Size returns the side length of the planet's square, or 0 for an
// unknown planet
func (p Planet) Size() int {
	if !p.valid() {
		return 0
	}
	return int(p) + 3
}

// MagicConstant returns the sum shared by every row, column and diagonal
func (p Planet) MagicConstant() int {
	n := p.Size()
	return n * (n*n + 1) / 2
}

func (p Planet) String() string {
	if !p.valid() {
		return "Planet(" + strconv.Itoa(int(p)) + ")"
	}
	return planetNames[p]
}

type cell struct {
	row, col int
}

// MagicSquare encodes a letter's ordinal (A=1) as the row and column where
// that number sits in a planetary magic square.
type MagicSquare struct {
	planet         Planet
	square         [][]int
	cells          []cell // indexed by value, cells[0] unused
	separator      string
	coordSeparator string
}

// NewMagicSquare creates a cipher for planet. An unknown planet falls back
// to Saturn.
func NewMagicSquare(planet Planet) MagicSquare {
	if !planet.valid() {
		log.Debug().Int("planet", int(planet)).Msg("Unknown planet, using Saturn")
		planet = Saturn
	}

	square := planetSquares[planet]
	n := len(square)
	cells := make([]cell, n*n+1)
	for i, row := range square {
		for j, v := range row {
			cells[v] = cell{row: i, col: j}
		}
	}

	return MagicSquare{
		planet:         planet,
		square:         square,
		cells:          cells,
		separator:      " ",
		coordSeparator: ",",
	}
}

func NewSaturn() MagicSquare  { return NewMagicSquare(Saturn) }
func NewJupiter() MagicSquare { return NewMagicSquare(Jupiter) }
func NewMars() MagicSquare    { return NewMagicSquare(Mars) }
func NewSun() MagicSquare     { return NewMagicSquare(Sun) }
func NewVenus() MagicSquare   { return NewMagicSquare(Venus) }
func NewMercury() MagicSquare { return NewMagicSquare(Mercury) }
func NewMoon() MagicSquare    { return NewMagicSquare(Moon) }

// WithSeparator returns a copy using sep between coordinate tokens
func (m MagicSquare) WithSeparator(sep string) MagicSquare {
	m.separator = sep
	return m
}

// WithCoordSeparator returns a copy using sep between row and column
func (m MagicSquare) WithCoordSeparator(sep string) MagicSquare {
	m.coordSeparator = sep
	return m
}

func (m MagicSquare) Planet() Planet { return m.planet }

func (m MagicSquare) Size() int { return len(m.square) }

// MaxValue returns the largest letter ordinal the square can encode
func (m MagicSquare) MaxValue() int {
	return len(m.square) * len(m.square)
}

// Square returns a copy of the numeric square
func (m MagicSquare) Square() [][]int {
	out := make([][]int, len(m.square))
	for i, row := range m.square {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Algorithm returns the cipher algorithm name
func (m MagicSquare) Algorithm() string {
	return string(EncTypeMagicSquare)
}

// Encrypt writes "{row}{coordSep}{col}" for every letter the square can
// hold. Letters past the square's capacity and non-letters are copied.
func (m MagicSquare) Encrypt(text string) string {
	var b strings.Builder

	prevCoord := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if isASCIILetter(ch) {
			if v := int(toUpperASCII(ch)-'A') + 1; v <= m.MaxValue() {
				if prevCoord {
					b.WriteString(m.separator)
				}
				c := m.cells[v]
				b.WriteString(strconv.Itoa(c.row + 1))
				b.WriteString(m.coordSeparator)
				b.WriteString(strconv.Itoa(c.col + 1))
				prevCoord = true
				continue
			}
		}
		b.WriteByte(ch)
		prevCoord = false
	}
	return b.String()
}

// Decrypt splits on the separator and turns every well-formed coordinate
// segment back into a letter. Other segments are copied verbatim.
func (m MagicSquare) Decrypt(text string) string {
	segments := []string{text}
	if m.separator != "" {
		segments = strings.Split(text, m.separator)
	}

	var b strings.Builder
	for _, seg := range segments {
		if letter, ok := m.decodeSegment(seg); ok {
			b.WriteRune(letter)
			continue
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (m MagicSquare) decodeSegment(seg string) (rune, bool) {
	if !strings.Contains(seg, m.coordSeparator) {
		return 0, false
	}
	parts := strings.Split(seg, m.coordSeparator)
	if len(parts) != 2 {
		return 0, false
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	n := len(m.square)
	if row < 1 || row > n || col < 1 || col > n {
		return 0, false
	}

	// Squares larger than 26 cells hold values with no letter
	v := m.square[row-1][col-1]
	if v < 1 || v > alphabetSize {
		return 0, false
	}
	return rune('A' + v - 1), true
}
