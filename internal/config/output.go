package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/turnchess/internal/errors"
)

// BoardStyle selects how the board is printed after each move.
type BoardStyle int

const (
	StyleColour BoardStyle = iota // ANSI coloured text
	StyleText                     // plain text
	StyleNone                     // no board output
)

var styleNames = map[BoardStyle]string{
	StyleColour: "colour",
	StyleText:   "text",
	StyleNone:   "none",
}

// String returns the name used in configuration files.
func (s BoardStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BoardStyle(%d)", int(s))
}

// ParseBoardStyle converts a style name. "color" is accepted for "colour".
func ParseBoardStyle(name string) (BoardStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "color" {
		name = "colour"
	}
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return 0, fmt.Errorf("unknown board style %q: %w", name, errors.ErrInvalidConfig)
}

// MarshalYAML implements yaml.Marshaler.
func (s BoardStyle) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *BoardStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	style, err := ParseBoardStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// OutputConfig holds settings related to board output.
type OutputConfig struct {
	// Style controls the terminal board rendering.
	Style BoardStyle `yaml:"style"`

	// SVGPath, when set, receives an SVG image of the final position.
	SVGPath string `yaml:"svg,omitempty"`

	// SquareSize is the SVG square edge in pixels.
	SquareSize int `yaml:"square_size"`

	// Coordinates prints file and rank labels around the board.
	Coordinates bool `yaml:"coordinates"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Style:       StyleColour,
		SquareSize:  45,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, ok := styleNames[o.Style]; !ok {
		return fmt.Errorf("board style %d: %w", int(o.Style), errors.ErrInvalidConfig)
	}
	if o.SquareSize < 8 {
		return fmt.Errorf("square size %d below 8: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
