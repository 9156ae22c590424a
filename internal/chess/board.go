package chess

import (
	"fmt"

	"github.com/lgbarn/turnchess/internal/errors"
)

// Board represents a chess board with all state needed for the game.
// Each square holds at most one piece and every stored piece's Square
// matches the slot it lives in.
type Board struct {
	// squares[file][rank]
	squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	toMove Colour

	// The square a pawn skipped over on the immediately preceding
	// double step, or NoSquare.
	enPassant Square

	// Bumped on every mutation so readers can invalidate caches.
	version uint64
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		toMove:    White,
		enPassant: NoSquare,
	}
}

// backRank is the starting order of the pieces on ranks 1 and 8.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
// Any existing pieces are discarded.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		b.put(&Piece{Kind: backRank[file], Colour: White}, Sq(file, 0))
		b.put(&Piece{Kind: Pawn, Colour: White}, Sq(file, 1))
		b.put(&Piece{Kind: Pawn, Colour: Black}, Sq(file, BoardSize-2))
		b.put(&Piece{Kind: backRank[file], Colour: Black}, Sq(file, BoardSize-1))
	}
}

// Clear removes every piece, leaving White to move and no en passant target.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.toMove = White
	b.enPassant = NoSquare
	b.version++
}

// put stores p at sq without checks. sq must be valid and empty.
func (b *Board) put(p *Piece, sq Square) {
	p.Square = sq
	b.squares[sq.File][sq.Rank] = p
}

// PieceAt returns the piece on sq, or nil if the square is empty or off
// the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.File][sq.Rank]
}

// Place puts p on sq and updates its stored square.
func (b *Board) Place(p *Piece, sq Square) error {
	if !sq.Valid() {
		return fmt.Errorf("place %v at %v: %w", p.Kind, sq, errors.ErrOffBoard)
	}
	if occupant := b.squares[sq.File][sq.Rank]; occupant != nil {
		return fmt.Errorf("place %v at %v held by %v: %w", p.Kind, sq, occupant.Kind, errors.ErrSquareOccupied)
	}
	b.put(p, sq)
	b.version++
	return nil
}

// Remove detaches and returns the piece on sq, or nil if there is none.
// The returned piece no longer refers to a square.
func (b *Board) Remove(sq Square) *Piece {
	p := b.PieceAt(sq)
	if p == nil {
		return nil
	}
	b.squares[sq.File][sq.Rank] = nil
	p.Square = NoSquare
	b.version++
	return p
}

// CurrentTurnColor returns the colour to move.
func (b *Board) CurrentTurnColor() Colour {
	return b.toMove
}

// SetTurn sets the colour to move.
func (b *Board) SetTurn(c Colour) {
	b.toMove = c
	b.version++
}

// FlipTurn passes the move to the other side.
func (b *Board) FlipTurn() {
	b.SetTurn(b.toMove.Opposite())
}

// EnPassantTarget returns the current en passant target, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.enPassant, b.enPassant.Valid()
}

// SetEnPassantTarget records sq as the en passant target. Passing an
// off-board square (such as NoSquare) clears it.
func (b *Board) SetEnPassantTarget(sq Square) {
	if !sq.Valid() {
		sq = NoSquare
	}
	b.enPassant = sq
	b.version++
}

// ClearEnPassantTarget removes the en passant target.
func (b *Board) ClearEnPassantTarget() {
	b.SetEnPassantTarget(NoSquare)
}

// Version returns a counter that changes whenever the board is mutated.
func (b *Board) Version() uint64 {
	return b.version
}

// Pieces returns the pieces of the given colour in file-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var out []*Piece
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil && p.Colour == colour {
				out = append(out, p)
			}
		}
	}
	return out
}

// Count returns the total number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] != nil {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board. Pieces are duplicated so the
// copy shares no state with b.
func (b *Board) Copy() *Board {
	nb := &Board{toMove: b.toMove, enPassant: b.enPassant, version: b.version}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil {
				cp := *p
				nb.squares[file][rank] = &cp
			}
		}
	}
	return nb
}
