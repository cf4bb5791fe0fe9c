// Package config loads CLI defaults from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/eykd/nanoid-go/internal/domain"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = ".nanoid.yaml"

// Environment variable names.
const (
	EnvConfig   = "NANOID_CONFIG"
	EnvAlphabet = "NANOID_ALPHABET"
	EnvPreset   = "NANOID_PRESET"
	EnvSize     = "NANOID_SIZE"
	EnvCount    = "NANOID_COUNT"
	EnvWorkers  = "NANOID_WORKERS"
)

// Config holds generation defaults.
type Config struct {
	Alphabet string `yaml:"alphabet,omitempty"`
	Preset   string `yaml:"preset,omitempty"`
	Size     int    `yaml:"size,omitempty"`
	Count    int    `yaml:"count,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`

	// Source is the file the config was read from, empty for built-in defaults.
	Source string `yaml:"-"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Preset:  domain.DefaultPreset,
		Size:    domain.DefaultSize,
		Count:   1,
		Workers: 1,
	}
}

// Load resolves the config file (path, then $NANOID_CONFIG, then DefaultFile
// in dir), decodes it over the defaults and applies environment overrides.
// The result is not validated, so callers can apply flags first and then call
// Validate. A missing DefaultFile is not an error; a missing explicitly named
// file is.
func Load(path, dir string, getenv func(string) string) (Config, error) {
	c := Default()

	explicit := true
	if path == "" {
		path = getenv(EnvConfig)
	}
	if path == "" {
		path = filepath.Join(dir, DefaultFile)
		explicit = false
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &c); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		c.Source = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file; built-in defaults apply
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := applyEnv(&c, getenv); err != nil {
		return Config{}, err
	}
	return c, nil
}

// overrides holds the settings a file or the environment actually set. A nil
// field was absent; an explicit zero is kept so Validate can reject it.
type overrides struct {
	Alphabet *string `yaml:"alphabet"`
	Preset   *string `yaml:"preset"`
	Size     *int    `yaml:"size"`
	Count    *int    `yaml:"count"`
	Workers  *int    `yaml:"workers"`
}

func decode(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var o overrides
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	c.merge(o)
	return nil
}

// merge copies the fields set in o over c. An explicit alphabet replaces the
// default preset.
func (c *Config) merge(o overrides) {
	if o.Alphabet != nil {
		c.Alphabet = *o.Alphabet
		c.Preset = ""
	}
	if o.Preset != nil {
		c.Preset = *o.Preset
	}
	if o.Size != nil {
		c.Size = *o.Size
	}
	if o.Count != nil {
		c.Count = *o.Count
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
}

func applyEnv(c *Config, getenv func(string) string) error {
	var o overrides

	ints := []struct {
		name string
		dst  **int
	}{
		{EnvSize, &o.Size},
		{EnvCount, &o.Count},
		{EnvWorkers, &o.Workers},
	}
	for _, v := range ints {
		raw := getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, v.name, raw)
		}
		*v.dst = &n
	}

	// Environment alphabet or preset replaces whichever one the file chose.
	alphabet, preset := getenv(EnvAlphabet), getenv(EnvPreset)
	switch {
	case alphabet != "" && preset != "":
		return fmt.Errorf("%w: %s and %s are both set", ErrAlphabetAndPreset, EnvAlphabet, EnvPreset)
	case alphabet != "":
		c.Alphabet, c.Preset = alphabet, ""
	case preset != "":
		c.Alphabet, c.Preset = "", preset
	}
	c.merge(o)
	return nil
}

// Validate checks that the configuration describes a usable generator.
func (c Config) Validate() error {
	if err := c.ValidateShape(); err != nil {
		return err
	}
	if err := domain.ValidateCount(c.Count); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", domain.ErrInvalidArgument, c.Workers)
	}
	return nil
}

// ValidateShape checks only the settings that describe a single ID: the
// alphabet or preset and the size.
func (c Config) ValidateShape() error {
	if c.Alphabet != "" && c.Preset != "" {
		return ErrAlphabetAndPreset
	}
	if _, err := c.ResolveAlphabet(); err != nil {
		return err
	}
	return domain.ValidateSize(c.Size)
}

// ResolveAlphabet returns the configured alphabet or preset. With neither
// set, the alphabet is empty and ErrEmptyAlphabet is returned.
func (c Config) ResolveAlphabet() (domain.Alphabet, error) {
	if c.Preset != "" && c.Alphabet == "" {
		return domain.Preset(c.Preset)
	}
	return domain.NewAlphabet(c.Alphabet)
}

// Dump returns c encoded as YAML.
func Dump(c Config) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
