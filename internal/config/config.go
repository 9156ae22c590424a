// Package config provides configuration for turnchess.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/turnchess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=game events, 2=running commentary

	// LogPath names the log file. Empty means LogFile is left as is.
	LogPath string `yaml:"log_file,omitempty"`

	Output  OutputConfig  `yaml:"output"`
	Game    GameConfig    `yaml:"game"`
	Journal JournalConfig `yaml:"journal"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Game:       *NewGameConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and replies are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Load reads YAML from r on top of the defaults and validates the result.
// Unknown keys are an error. An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the YAML configuration in filename.
func LoadFile(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}
	cfg, err := Load(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
