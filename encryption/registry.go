package encryption

import (
	"fmt"
	"sort"
	"sync"
)

// EncType names a cipher algorithm
type EncType string

const (
	EncTypeCaesar      EncType = "caesar"
	EncTypeROT13       EncType = "rot13"
	EncTypeAtbash      EncType = "atbash"
	EncTypeAffine      EncType = "affine"
	EncTypeVigenere    EncType = "vigenere"
	EncTypeXOR         EncType = "xor"
	EncTypePolybius    EncType = "polybius"
	EncTypeMagicSquare EncType = "magicsquare"
)

// Options carries construction parameters for NewCipher. Each cipher reads
// only the fields it needs.
type Options struct {
	Shift int // caesar
	A, B  int // affine

	Key      string // vigenere, xor, polybius keyword
	KeyBytes []byte // xor, takes precedence over Key
	Alphabet string // polybius, takes precedence over Key

	// nil keeps the cipher's default separator
	Separator      *string // polybius, magicsquare
	CoordSeparator *string // magicsquare

	Planet Planet // magicsquare
}

// CipherFactory creates a new cipher instance
type CipherFactory func(opts Options) (Cipher, error)

// registry holds registered cipher factories
var (
	registryMu sync.RWMutex
	registry   = make(map[EncType]CipherFactory)
)

func init() {
	// Register built-in cipher types
	Register(EncTypeCaesar, func(opts Options) (Cipher, error) {
		return NewCaesar(opts.Shift), nil
	})
	Register(EncTypeROT13, func(Options) (Cipher, error) {
		return NewROT13(), nil
	})
	Register(EncTypeAtbash, func(Options) (Cipher, error) {
		return NewAtbash(), nil
	})
	Register(EncTypeAffine, func(opts Options) (Cipher, error) {
		a, err := NewAffine(opts.A, opts.B)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
	Register(EncTypeVigenere, func(opts Options) (Cipher, error) {
		return NewVigenere(opts.Key), nil
	})
	Register(EncTypeXOR, func(opts Options) (Cipher, error) {
		if opts.KeyBytes != nil {
			return NewXOR(opts.KeyBytes), nil
		}
		return NewXORFromString(opts.Key), nil
	})
	Register(EncTypePolybius, newPolybiusFromOptions)
	Register(EncTypeMagicSquare, newMagicSquareFromOptions)
}

func newPolybiusFromOptions(opts Options) (Cipher, error) {
	var p Polybius
	switch {
	case opts.Alphabet != "":
		p = NewPolybiusWithAlphabet(opts.Alphabet)
	case opts.Key != "":
		p = NewPolybiusWithKey(opts.Key)
	default:
		p = NewPolybius()
	}
	if opts.Separator != nil {
		p = p.WithSeparator(*opts.Separator)
	}
	return p, nil
}

func newMagicSquareFromOptions(opts Options) (Cipher, error) {
	if !opts.Planet.valid() {
		return nil, fmt.Errorf("magic square: %s: %w", opts.Planet, ErrInvalidKey)
	}
	m := NewMagicSquare(opts.Planet)
	if opts.Separator != nil {
		m = m.WithSeparator(*opts.Separator)
	}
	if opts.CoordSeparator != nil {
		m = m.WithCoordSeparator(*opts.CoordSeparator)
	}
	return m, nil
}

// Register adds a cipher factory to the registry, replacing any factory
// already registered for encType
func Register(encType EncType, factory CipherFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[encType] = factory
}

// NewCipher creates a cipher using the registry
func NewCipher(encType EncType, opts Options) (Cipher, error) {
	registryMu.RLock()
	factory, ok := registry[encType]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", encType, ErrUnsupported)
	}

	return factory(opts)
}

// ListRegistered returns all registered cipher types in name order
func ListRegistered() []EncType {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]EncType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// IsRegistered checks if an encryption type is registered
func IsRegistered(encType EncType) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[encType]
	return ok
}
