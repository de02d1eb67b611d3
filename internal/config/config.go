package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	apperrors "github.com/classic-encrypt-go/internal/errors"
)

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // console, json
}

// CipherConfig describes one named cipher profile
type CipherConfig struct {
	Name string `json:"name" mapstructure:"name"`
	Type string `json:"type" mapstructure:"type"` // caesar, rot13, atbash, affine, vigenere, xor, polybius, magicsquare

	Shift int `json:"shift" mapstructure:"shift"` // caesar
	A     int `json:"a" mapstructure:"a"`         // affine
	B     int `json:"b" mapstructure:"b"`         // affine

	Key      string `json:"key" mapstructure:"key"`           // vigenere, xor, polybius keyword
	Alphabet string `json:"alphabet" mapstructure:"alphabet"` // polybius

	// Unset separators keep the cipher defaults
	Separator      *string `json:"separator,omitempty" mapstructure:"separator"`
	CoordSeparator *string `json:"coord_separator,omitempty" mapstructure:"coord_separator"`

	Planet string `json:"planet" mapstructure:"planet"` // magicsquare
}

// Config represents the main configuration
type Config struct {
	Log     LogConfig      `json:"log" mapstructure:"log"`
	Ciphers []CipherConfig `json:"ciphers" mapstructure:"ciphers"`
}

// Load reads configuration from path, or from ciphers.{json,yaml,toml} in
// the usual search paths when path is empty. A missing file in the search
// paths is not an error; the defaults are used instead.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ciphers")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.classic-encrypt")
	}

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Environment variables
	v.SetEnvPrefix("CLASSIC_ENCRYPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperrors.NewInvalidConfigWithCause("failed to read config", err)
		}
		log.Warn().Msg("Config file not found, using defaults")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.NewInvalidConfigWithCause("failed to unmarshal config", err)
	}

	return cfg, nil
}

// Validate checks that every profile has a unique name and a type
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Ciphers))
	for i, cc := range c.Ciphers {
		if cc.Name == "" {
			return apperrors.NewInvalidConfig(fmt.Sprintf("cipher %d: missing name", i))
		}
		if _, dup := seen[cc.Name]; dup {
			return apperrors.NewInvalidConfig(fmt.Sprintf("cipher %q: duplicate name", cc.Name))
		}
		seen[cc.Name] = struct{}{}

		if cc.Type == "" {
			return apperrors.NewInvalidConfig(fmt.Sprintf("cipher %q: missing type", cc.Name))
		}
	}
	return nil
}

// Find returns the profile with the given name
func (c *Config) Find(name string) (CipherConfig, bool) {
	for _, cc := range c.Ciphers {
		if cc.Name == name {
			return cc, true
		}
	}
	return CipherConfig{}, false
}
