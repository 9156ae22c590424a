package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/lgbarn/turnchess/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output.Style != StyleColour {
		t.Errorf("Output.Style = %v, want colour", cfg.Output.Style)
	}
	if cfg.Output.SquareSize != 45 {
		t.Errorf("Output.SquareSize = %d, want 45", cfg.Output.SquareSize)
	}
	if !cfg.Output.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if !cfg.Game.StopOnReject {
		t.Error("StopOnReject should be true by default")
	}
	if cfg.Journal.Enabled() {
		t.Error("journal should be disabled by default")
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestConfig_Validate verifies validation of each section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = 0 }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"unknown style", func(c *Config) { c.Output.Style = BoardStyle(9) }, true},
		{"tiny squares", func(c *Config) { c.Output.SquareSize = 2 }, true},
		{"start fen", func(c *Config) { c.Game.StartFEN = "8/8/8/8/8/8/8/K6k w - - 0 1" }, false},
		{"start fen without side", func(c *Config) { c.Game.StartFEN = "8/8/8/8/8/8/8/K6k" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseBoardStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    BoardStyle
		wantErr bool
	}{
		{"colour", StyleColour, false},
		{"Color", StyleColour, false},
		{" text ", StyleText, false},
		{"none", StyleNone, false},
		{"fancy", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBoardStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBoardStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBoardStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	src := `
verbosity: 2
output:
  style: text
  svg: final.svg
  square_size: 60
game:
  fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
  stop_on_reject: false
journal:
  path: events.jsonl
  game_id: g-1
`
	cfg, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Output.Style != StyleText {
		t.Errorf("Style = %v, want text", cfg.Output.Style)
	}
	if cfg.Output.SVGPath != "final.svg" || cfg.Output.SquareSize != 60 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Output.Coordinates {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Game.StopOnReject {
		t.Error("StopOnReject should be false")
	}
	if cfg.Journal.Path != "events.jsonl" || cfg.Journal.GameID != "g-1" {
		t.Errorf("Journal = %+v", cfg.Journal)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "colours: 3\n"},
		{"bad style", "output:\n  style: fancy\n"},
		{"bad type", "verbosity: loud\n"},
		{"invalid value", "verbosity: 7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if cfg.Output.SquareSize != 45 {
		t.Errorf("empty document should give defaults, got %+v", cfg.Output)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turnchess.yaml")
	if err := os.WriteFile(path, []byte("verbosity: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() of a missing file should fail")
	}
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	cfg := NewConfigBuilder().
		WithBoardStyle(StyleNone).
		WithJournal("out.jsonl").
		Build()

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "style: none") {
		t.Errorf("encoded config missing style:\n%s", buf.String())
	}

	back, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if back.Output != cfg.Output || back.Game != cfg.Game || back.Journal != cfg.Journal {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, cfg)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithBoardStyle(StyleText).
		WithSVG("board.svg", 30).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithScript("moves.yaml").
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		Build()

	if cfg.Output.Style != StyleText {
		t.Errorf("Style = %v, want text", cfg.Output.Style)
	}
	if cfg.Output.SVGPath != "board.svg" || cfg.Output.SquareSize != 30 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Game.ScriptPath != "moves.yaml" {
		t.Errorf("ScriptPath = %q", cfg.Game.ScriptPath)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("streams not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	// A zero square size keeps the default.
	if got := NewConfigBuilder().WithSVG("x.svg", 0).Build().Output.SquareSize; got != 45 {
		t.Errorf("SquareSize = %d, want 45", got)
	}
}
