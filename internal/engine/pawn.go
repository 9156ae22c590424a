package engine

import "github.com/lgbarn/turnchess/internal/chess"

// pawnDestinations generates the squares a pawn may move to: one step
// forward onto an empty square, two steps from its starting rank when
// both squares are empty, and a forward diagonal holding an enemy piece
// or equal to the en passant target.
func pawnDestinations(board *chess.Board, p *chess.Piece) chess.SquareSet {
	var set chess.SquareSet
	from := p.Square
	dir := p.Colour.Forward()

	// Nothing lies beyond the last rank.
	if from.Rank == p.Colour.LastRank() {
		return set
	}

	ep, hasEP := board.EnPassantTarget()
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if hasEP && to == ep && isEnPassantVictim(board, p, to) {
			set.Add(to)
			continue
		}
		if target := board.PieceAt(to); target != nil && target.Colour != p.Colour {
			set.Add(to)
		}
	}

	one, _ := from.Offset(0, dir)
	if board.PieceAt(one) != nil {
		return set
	}
	set.Add(one)

	if from.Rank == p.Colour.PawnRank() {
		if two, ok := from.Offset(0, 2*dir); ok && board.PieceAt(two) == nil {
			set.Add(two)
		}
	}
	return set
}

// isEnPassantVictim reports whether an enemy pawn sits behind target,
// where a double step by the opponent would have left it.
func isEnPassantVictim(board *chess.Board, p *chess.Piece, target chess.Square) bool {
	victim := board.PieceAt(EnPassantVictim(p.Colour, target))
	return victim != nil && victim.Kind == chess.Pawn && victim.Colour != p.Colour
}

// PawnAttacks returns both forward diagonals of a pawn that lie on the
// board, regardless of what occupies them. It is used for threat display
// and is not the pawn's movable-destination set.
func PawnAttacks(p *chess.Piece) chess.SquareSet {
	var set chess.SquareSet
	if p.Kind != chess.Pawn || p.Square.Rank == p.Colour.LastRank() {
		return set
	}
	for _, df := range []int{-1, 1} {
		if to, ok := p.Square.Offset(df, p.Colour.Forward()); ok {
			set.Add(to)
		}
	}
	return set
}
