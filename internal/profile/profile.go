// Package profile builds named cipher profiles from configuration.
package profile

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/classic-encrypt-go/encryption"
	"github.com/classic-encrypt-go/internal/config"
	apperrors "github.com/classic-encrypt-go/internal/errors"
)

// Set is an immutable collection of named ciphers
type Set struct {
	ciphers map[string]encryption.Cipher
	names   []string
}

// Build creates the cipher described by cc
func Build(cc config.CipherConfig) (encryption.Cipher, error) {
	opts := encryption.Options{
		Shift:          cc.Shift,
		A:              cc.A,
		B:              cc.B,
		Key:            cc.Key,
		Alphabet:       cc.Alphabet,
		Separator:      cc.Separator,
		CoordSeparator: cc.CoordSeparator,
	}

	if cc.Planet != "" {
		planet, err := encryption.ParsePlanet(cc.Planet)
		if err != nil {
			return nil, apperrors.NewInvalidConfigWithCause(fmt.Sprintf("cipher %q", cc.Name), err)
		}
		opts.Planet = planet
	}

	c, err := encryption.NewCipher(encryption.EncType(cc.Type), opts)
	if err != nil {
		return nil, fmt.Errorf("cipher %q: %w", cc.Name, err)
	}
	return c, nil
}

// Load validates cfg and builds every profile it lists
func Load(cfg *config.Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Set{
		ciphers: make(map[string]encryption.Cipher, len(cfg.Ciphers)),
		names:   make([]string, 0, len(cfg.Ciphers)),
	}
	for _, cc := range cfg.Ciphers {
		c, err := Build(cc)
		if err != nil {
			return nil, err
		}
		s.ciphers[cc.Name] = c
		s.names = append(s.names, cc.Name)

		log.Info().
			Str("name", cc.Name).
			Str("type", cc.Type).
			Msg("Cipher profile loaded")
	}
	return s, nil
}

// Get returns the cipher registered under name
func (s *Set) Get(name string) (encryption.Cipher, bool) {
	c, ok := s.ciphers[name]
	return c, ok
}

// Names returns the profile names in configuration order
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Encrypt encrypts text with the named profile
func (s *Set) Encrypt(name, text string) (string, error) {
	c, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return c.Encrypt(text), nil
}

// Decrypt decrypts text with the named profile
func (s *Set) Decrypt(name, text string) (string, error) {
	c, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return c.Decrypt(text), nil
}

func (s *Set) lookup(name string) (encryption.Cipher, error) {
	c, ok := s.ciphers[name]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("cipher profile %q not found", name))
	}
	return c, nil
}
