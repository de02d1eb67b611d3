package encryption

import (
	"bytes"
	"testing"
)

func TestXORTransformBytes(t *testing.T) {
	testCases := []struct {
		name string
		key  []byte
		in   []byte
		want []byte
	}{
		{"single byte", []byte{0xFF}, []byte{0x00, 0x0F, 0xF0}, []byte{0xFF, 0xF0, 0x0F}},
		{"repeating", []byte{0x01, 0x02}, []byte{0x00, 0x00, 0x00}, []byte{0x01, 0x02, 0x01}},
		{"empty key", nil, []byte{0x10, 0x20}, []byte{0x10, 0x20}},
		{"empty input", []byte{0xAA}, []byte{}, []byte{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x := NewXOR(tc.key)
			got := x.TransformBytes(tc.in)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("TransformBytes(%x) = %x, want %x", tc.in, got, tc.want)
			}
			if back := x.TransformBytes(got); !bytes.Equal(back, tc.in) {
				t.Errorf("second TransformBytes = %x, want %x", back, tc.in)
			}
		})
	}
}

func TestXORTextForm(t *testing.T) {
	x := NewXOR([]byte{0x20})
	if got := x.Encrypt("HELLO"); got != "hello" {
		t.Errorf("Encrypt(HELLO) = %q, want hello", got)
	}
	if got := x.Decrypt("hello"); got != "HELLO" {
		t.Errorf("Decrypt(hello) = %q, want HELLO", got)
	}
	if got := NewXOR(nil).Encrypt("Hello"); got != "Hello" {
		t.Errorf("empty key Encrypt = %q, want Hello", got)
	}
}

func TestXORDoesNotAliasInput(t *testing.T) {
	key := []byte{0x01}
	x := NewXOR(key)
	key[0] = 0xFF

	in := []byte{0x00}
	out := x.TransformBytes(in)
	if out[0] != 0x01 {
		t.Errorf("key was aliased: got %x", out[0])
	}
	if in[0] != 0x00 {
		t.Error("TransformBytes modified its input")
	}

	empty := NewXOR(nil)
	out = empty.TransformBytes(in)
	out[0] = 0x42
	if in[0] != 0x00 {
		t.Error("empty-key TransformBytes returned its input slice")
	}
}

func TestXORFromPassphrase(t *testing.T) {
	a := NewXORFromPassphrase("password123", 32)
	b := NewXORFromPassphrase("password123", 32)
	c := NewXORFromPassphrase("password124", 32)

	if a.KeyLen() != 32 {
		t.Fatalf("KeyLen() = %d, want 32", a.KeyLen())
	}
	msg := "derived keys are deterministic"
	if a.Encrypt(msg) != b.Encrypt(msg) {
		t.Error("same passphrase produced different keys")
	}
	if a.Encrypt(msg) == c.Encrypt(msg) {
		t.Error("different passphrases produced the same keystream")
	}
	if got := NewXORFromPassphrase("x", 0).Encrypt(msg); got != msg {
		t.Errorf("zero-size key Encrypt = %q, want passthrough", got)
	}
}
