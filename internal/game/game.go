// Package game implements the turn controller: it validates proposed
// moves, applies capture, en passant and promotion side effects, advances
// the turn and detects the end of the game.
package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/engine"
	"github.com/lgbarn/turnchess/internal/errors"
)

// Game owns a board and is its only writer. It is not safe for
// concurrent use.
type Game struct {
	id        string
	board     *chess.Board
	rules     *engine.Rules
	listeners []Listener

	log       io.Writer
	verbosity int

	// Plies committed since the last reset.
	ply int
}

// New creates a game in the standard starting position with White to move.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = engine.NewInitialBoard()
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	g.rules = engine.NewRules(g.board)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Subscribe adds l to the listeners notified of game events.
func (g *Game) Subscribe(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Ply returns the number of moves committed since the game (re)started.
func (g *Game) Ply() int {
	return g.ply
}

// CurrentTurnColor returns the colour to move.
func (g *Game) CurrentTurnColor() chess.Colour {
	return g.board.CurrentTurnColor()
}

// EnPassantTarget returns the current en passant target, if any.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.board.EnPassantTarget()
}

// PieceAt returns a copy of the piece on sq. Changing the copy does not
// affect the game.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	p := g.board.PieceAt(sq)
	if p == nil {
		return chess.Piece{}, false
	}
	return *p, true
}

// Snapshot returns a deep copy of the current board for rendering.
func (g *Game) Snapshot() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position in FEN form.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// GetLegalDestinations returns the legal destinations of the piece on sq,
// or an empty set when sq is empty or off the board.
func (g *Game) GetLegalDestinations(sq chess.Square) chess.SquareSet {
	return g.rules.LegalDestinationsFor(g.board.PieceAt(sq))
}

// GetAllLegalDestinations returns every square any piece of colour could
// move to. It is meant for highlighting and implies nothing about check.
func (g *Game) GetAllLegalDestinations(colour chess.Colour) chess.SquareSet {
	return g.rules.AllLegalDestinationsFor(colour)
}

// GetAttackedSquares returns the squares colour threatens.
func (g *Game) GetAttackedSquares(colour chess.Colour) chess.SquareSet {
	return g.rules.AttackedSquares(colour)
}

// Reset restores the standard starting position with White to move.
func (g *Game) Reset() {
	g.board.SetupInitialPosition()
	g.ply = 0
	g.logf(1, "game %s reset\n", g.id)
}

// AttemptMove moves the piece on from to to if that is legal for the side
// to move. A rejected move returns an error wrapping errors.ErrRejected
// and the reason, and leaves the game untouched.
func (g *Game) AttemptMove(from, to chess.Square) (MoveOutcome, error) {
	piece, err := g.validate(from, to)
	if err != nil {
		g.logf(2, "rejected %v-%v: %v\n", from, to, err)
		return MoveOutcome{}, &errors.MoveError{
			Err:  fmt.Errorf("%w: %w", errors.ErrRejected, err),
			Ply:  g.ply + 1,
			From: from.String(),
			To:   to.String(),
		}
	}
	return g.commit(piece, from, to), nil
}

// validate checks a proposed move and returns the piece that would move.
func (g *Game) validate(from, to chess.Square) (*chess.Piece, error) {
	if !from.Valid() || !to.Valid() {
		return nil, errors.ErrOffBoard
	}
	piece := g.board.PieceAt(from)
	if piece == nil {
		return nil, errors.ErrNoPiece
	}
	if piece.Colour != g.board.CurrentTurnColor() {
		return nil, errors.ErrWrongTurn
	}
	if !g.rules.LegalDestinationsFor(piece).Has(to) {
		return nil, errors.ErrIllegalDestination
	}
	return piece, nil
}

// commit applies a validated move.
func (g *Game) commit(piece *chess.Piece, from, to chess.Square) MoveOutcome {
	mover := piece.Colour
	isPawn := piece.Kind == chess.Pawn
	g.ply++

	outcome := MoveOutcome{
		Ply:    g.ply,
		Kind:   piece.Kind,
		Colour: mover,
		From:   from,
		To:     to,
	}

	// An occupied destination is an ordinary capture. An empty one may
	// still be an en passant capture of the pawn behind it.
	victimSq := to
	if g.board.PieceAt(to) == nil && isPawn {
		if ep, ok := g.board.EnPassantTarget(); ok && ep == to {
			victimSq = engine.EnPassantVictim(mover, to)
			outcome.EnPassant = true
		}
	}

	if victim := g.board.PieceAt(victimSq); victim != nil && victim.Colour != mover {
		capture := &CaptureEvent{Colour: victim.Colour, Kind: victim.Kind, Square: victimSq}
		outcome.Captured = capture
		if victim.Kind == chess.King {
			outcome.Promoted = isPawn && to.Rank == mover.LastRank()
			return g.endGame(outcome)
		}
		g.board.Remove(victimSq)
		g.logf(2, "%v %v captured on %v\n", capture.Colour, capture.Kind, capture.Square)
		for _, l := range g.listeners {
			l.OnPieceCaptured(*capture)
		}
	} else {
		outcome.EnPassant = false
	}

	g.board.ClearEnPassantTarget()
	if isPawn && engine.IsDoubleStep(from, to) {
		g.board.SetEnPassantTarget(engine.SkippedSquare(from, to))
	}

	g.board.Remove(from)
	if isPawn && to.Rank == mover.LastRank() {
		piece = chess.NewPiece(mover, chess.Queen)
		outcome.Promoted = true
	}
	if err := g.board.Place(piece, to); err != nil {
		// to was emptied above; reaching this is a bug in the controller.
		panic(err)
	}

	g.board.FlipTurn()

	g.logf(2, "ply %d: %v %v %v-%v\n", outcome.Ply, mover, outcome.Kind, from, to)
	g.notifyCommitted(outcome)
	return outcome
}

// endGame handles a king capture: the winner is announced, the board is
// reset to the starting position and the move is reported as committed.
func (g *Game) endGame(outcome MoveOutcome) MoveOutcome {
	outcome.GameEnded = true
	outcome.Winner = outcome.Colour

	g.logf(1, "game %s: %v wins on ply %d\n", g.id, outcome.Winner, outcome.Ply)
	end := GameEndEvent{Winner: outcome.Winner, Ply: outcome.Ply}
	for _, l := range g.listeners {
		l.OnGameEnded(end)
	}

	g.Reset()
	g.notifyCommitted(outcome)
	return outcome
}

func (g *Game) notifyCommitted(outcome MoveOutcome) {
	for _, l := range g.listeners {
		l.OnMoveCommitted(outcome)
	}
}

// logf writes to the game log when verbosity is at least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.log == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.log, format, args...)
}
