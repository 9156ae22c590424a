// Package engine provides legal move generation over a chess.Board.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement, side to move and en passant fields are used; castling
// rights and clocks are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			if err := board.Place(chess.NewPiece(colour, kind), chess.Sq(file, rank)); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			file++
		}
		if file > chess.BoardSize {
			return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetTurn(chess.White)
	case "b":
		board.SetTurn(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.ClearEnPassantTarget()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant field: %v: %w", err, errors.ErrInvalidFEN)
	}
	board.SetEnPassantTarget(sq)
	return nil
}

// BoardToFEN converts a board to a FEN string. The castling field is
// always "-" and the clocks are fixed at "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteString(" - ")
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.Sq(file, rank))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.CurrentTurnColor() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	sq, _ := board.EnPassantTarget()
	sb.WriteString(sq.String())
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
