// Package chess provides core chess types and the board state.
package chess

import (
	"fmt"

	"github.com/lgbarn/turnchess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// LastRank returns the rank a pawn of this colour promotes on.
func (c Colour) LastRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'P', 'p':
		return Pawn, true
	}
	return 0, false
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is White's
// back rank.
type Square struct {
	File int
	Rank int
}

// NoSquare marks the absence of a square, e.g. no en passant target.
var NoSquare = Square{File: -1, Rank: -1}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by df files and dr ranks, and whether
// the result is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	n := Square{File: s.File + df, Rank: s.Rank + dr}
	return n, n.Valid()
}

// String returns the coordinate label of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts a coordinate label like "e4" into a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'H' {
		file = int(s[0]) - 'A'
	}
	sq := Square{File: file, Rank: int(s[1]) - '1'}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// Piece is a chess piece with its colour and current square.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square
}

// NewPiece creates a piece that is not yet on the board.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{Kind: kind, Colour: colour, Square: NoSquare}
}

// String returns e.g. "White Pawn e2".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.Colour, p.Kind, p.Square)
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}
