package game

import (
	"io"

	"github.com/lgbarn/turnchess/internal/chess"
)

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from board instead of the standard position.
// The game takes ownership of board; callers must not mutate it afterwards.
func WithBoard(board *chess.Board) Option {
	return func(g *Game) {
		if board != nil {
			g.board = board
		}
	}
}

// WithListener subscribes l to the game's events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

// WithLogger sets where log messages go and how chatty they are
// (0=nothing, 1=game events, 2=every move and rejection).
func WithLogger(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.log = w
		g.verbosity = verbosity
	}
}

// WithID sets the game identifier reported by ID.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}
