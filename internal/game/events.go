package game

import "github.com/lgbarn/turnchess/internal/chess"

// CaptureEvent describes a piece removed from the board by a capture.
type CaptureEvent struct {
	Colour chess.Colour
	Kind   chess.Kind
	Square chess.Square // where the captured piece stood
}

// MoveOutcome describes a committed move.
type MoveOutcome struct {
	Ply    int // 1-based ply of the move within the current game
	Kind   chess.Kind
	Colour chess.Colour
	From   chess.Square
	To     chess.Square

	// Captured is set when the move removed an enemy piece, including a
	// captured king.
	Captured  *CaptureEvent
	EnPassant bool
	Promoted  bool // the pawn became a queen on To

	// GameEnded is set when the move captured a king. The board has
	// already been reset when the outcome is delivered.
	GameEnded bool
	Winner    chess.Colour
}

// MoveEvent is delivered to listeners after a move is committed.
type MoveEvent = MoveOutcome

// GameEndEvent is delivered when a king is captured.
type GameEndEvent struct {
	Winner chess.Colour
	Ply    int
}

// Listener receives notifications from a Game. Callbacks run
// synchronously inside AttemptMove and must not call AttemptMove.
type Listener interface {
	OnPieceCaptured(CaptureEvent)
	OnMoveCommitted(MoveEvent)
	OnGameEnded(GameEndEvent)
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil
// fields are skipped.
type ListenerFuncs struct {
	Captured  func(CaptureEvent)
	Committed func(MoveEvent)
	Ended     func(GameEndEvent)
}

// OnPieceCaptured implements Listener.
func (l ListenerFuncs) OnPieceCaptured(e CaptureEvent) {
	if l.Captured != nil {
		l.Captured(e)
	}
}

// OnMoveCommitted implements Listener.
func (l ListenerFuncs) OnMoveCommitted(e MoveEvent) {
	if l.Committed != nil {
		l.Committed(e)
	}
}

// OnGameEnded implements Listener.
func (l ListenerFuncs) OnGameEnded(e GameEndEvent) {
	if l.Ended != nil {
		l.Ended(e)
	}
}
