package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardStyle sets the terminal board style.
func (b *ConfigBuilder) WithBoardStyle(style BoardStyle) *ConfigBuilder {
	b.cfg.Output.Style = style
	return b
}

// WithSVG writes an SVG of the final position to path.
func (b *ConfigBuilder) WithSVG(path string, squareSize int) *ConfigBuilder {
	b.cfg.Output.SVGPath = path
	if squareSize > 0 {
		b.cfg.Output.SquareSize = squareSize
	}
	return b
}

// WithStartFEN starts the game from fen.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithScript replays the move script in path.
func (b *ConfigBuilder) WithScript(path string) *ConfigBuilder {
	b.cfg.Game.ScriptPath = path
	return b
}

// WithJournal records events to path.
func (b *ConfigBuilder) WithJournal(path string) *ConfigBuilder {
	b.cfg.Journal.Path = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
