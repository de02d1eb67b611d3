package encryption

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

// TestNewCipher tests cipher creation through the registry
func TestNewCipher(t *testing.T) {
	testCases := []struct {
		name    string
		encType EncType
		opts    Options
		in      string
		want    string
	}{
		{"caesar", EncTypeCaesar, Options{Shift: 3}, "XYZ", "ABC"},
		{"rot13", EncTypeROT13, Options{}, "HELLO", "URYYB"},
		{"atbash", EncTypeAtbash, Options{}, "ABC", "ZYX"},
		{"affine", EncTypeAffine, Options{A: 5, B: 8}, "HELLO", "RCLLA"},
		{"vigenere", EncTypeVigenere, Options{Key: "KEY"}, "HELLO", "RIJVS"},
		{"xor string key", EncTypeXOR, Options{Key: " "}, "HELLO", "hello"},
		{"xor bytes win", EncTypeXOR, Options{Key: "ignored", KeyBytes: []byte{0x20}}, "HELLO", "hello"},
		{"polybius", EncTypePolybius, Options{}, "HELLO", "2315313134"},
		{"polybius key", EncTypePolybius, Options{Key: "KEYWORD"}, "A", "23"},
		{"polybius alphabet wins", EncTypePolybius, Options{Key: "KEYWORD", Alphabet: standardAlphabet}, "A", "11"},
		{"polybius separator", EncTypePolybius, Options{Separator: strPtr(" ")}, "AB", "11 12"},
		{"magic default", EncTypeMagicSquare, Options{}, "AB", "2,3 1,1"},
		{"magic configured", EncTypeMagicSquare, Options{Planet: Mars, Separator: strPtr("|"), CoordSeparator: strPtr("-")}, "AB", "4-3|5-4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCipher(tc.encType, tc.opts)
			if err != nil {
				t.Fatalf("Failed to create cipher: %v", err)
			}
			if got := c.Encrypt(tc.in); got != tc.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if got := c.Decrypt(tc.want); got != tc.in {
				t.Errorf("Decrypt(%q) = %q, want %q", tc.want, got, tc.in)
			}
		})
	}
}

func TestNewCipherErrors(t *testing.T) {
	testCases := []struct {
		name    string
		encType EncType
		opts    Options
		wantErr error
	}{
		{"unknown type", EncType("enigma"), Options{}, ErrUnsupported},
		{"empty type", EncType(""), Options{}, ErrUnsupported},
		{"affine without inverse", EncTypeAffine, Options{A: 13}, ErrInvalidKey},
		{"unknown planet", EncTypeMagicSquare, Options{Planet: Planet(7)}, ErrInvalidKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCipher(tc.encType, tc.opts)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewCipher() error = %v, want %v", err, tc.wantErr)
			}
			if c != nil {
				t.Errorf("NewCipher() returned %#v alongside an error", c)
			}
		})
	}
}

func TestListRegistered(t *testing.T) {
	got := ListRegistered()
	want := []EncType{
		EncTypeAffine, EncTypeAtbash, EncTypeCaesar, EncTypeMagicSquare,
		EncTypePolybius, EncTypeROT13, EncTypeVigenere, EncTypeXOR,
	}
	if len(got) < len(want) {
		t.Fatalf("ListRegistered() = %v, want at least %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("ListRegistered() not sorted: %v", got)
		}
	}
	for _, w := range want {
		if !IsRegistered(w) {
			t.Errorf("%q not registered", w)
		}
	}
}

func TestRegisterCustom(t *testing.T) {
	const reversed EncType = "test-reverse"
	Register(reversed, func(Options) (Cipher, error) {
		return NewAtbash(), nil
	})

	if !IsRegistered(reversed) {
		t.Fatal("custom type not registered")
	}
	c, err := NewCipher(reversed, Options{})
	if err != nil {
		t.Fatalf("NewCipher() failed: %v", err)
	}
	if got := c.Encrypt("ABC"); got != "ZYX" {
		t.Errorf("Encrypt(ABC) = %q, want ZYX", got)
	}
}
