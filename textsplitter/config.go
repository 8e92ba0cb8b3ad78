package textsplitter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the splitter options, as YAML
//
//	language: rust
//	max_chunk_size: 800
//	concurrency: 4
//
// or as TOML with the same keys.
type Config struct {
	Language     string `yaml:"language" toml:"language"`
	MaxChunkSize int    `yaml:"max_chunk_size" toml:"max_chunk_size"`
	Concurrency  int    `yaml:"concurrency" toml:"concurrency"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Language:     defaultLanguage,
		MaxChunkSize: defaultMaxChunkSize,
		Concurrency:  1,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse splitter config: %w", err)
	}
	if err := cfg.options().validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseTOMLConfig decodes TOML on top of DefaultConfig. Unknown keys are
// rejected.
func ParseTOMLConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse splitter config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("failed to parse splitter config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.options().validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a config file. Files ending in .toml are parsed as TOML,
// everything else as YAML.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read splitter config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLConfig(data)
	}
	return ParseConfig(data)
}

// Options converts the config into splitter options.
func (c Config) Options() []Option {
	return []Option{
		WithLanguage(c.Language),
		WithMaxChunkSize(c.MaxChunkSize),
		WithConcurrency(c.Concurrency),
	}
}

func (c Config) options() options {
	o := options{}
	for _, opt := range c.Options() {
		opt(&o)
	}
	return o
}
