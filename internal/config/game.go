package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/turnchess/internal/errors"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// StartFEN replaces the standard starting position when set.
	StartFEN string `yaml:"fen,omitempty"`

	// ScriptPath names a move script replayed instead of reading stdin.
	ScriptPath string `yaml:"script,omitempty"`

	// StopOnReject ends a script replay at the first rejected move.
	StopOnReject bool `yaml:"stop_on_reject"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{StopOnReject: true}
}

// Validate performs the cheap structural checks. The FEN itself is
// checked when the board is built.
func (g *GameConfig) Validate() error {
	if g.StartFEN != "" && len(strings.Fields(g.StartFEN)) < 2 {
		return fmt.Errorf("start position %q needs placement and side to move: %w",
			g.StartFEN, errors.ErrInvalidConfig)
	}
	return nil
}

// JournalConfig controls the JSON event journal.
type JournalConfig struct {
	// Path of the journal file; empty disables the journal.
	Path string `yaml:"path,omitempty"`

	// GameID stamps journal entries. A random ID is used when empty.
	GameID string `yaml:"game_id,omitempty"`
}

// Enabled reports whether a journal should be written.
func (j JournalConfig) Enabled() bool {
	return j.Path != ""
}
