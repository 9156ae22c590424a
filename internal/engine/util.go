package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/turnchess/internal/chess"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsDoubleStep reports whether a pawn moving from -> to advanced two ranks
// along its file.
func IsDoubleStep(from, to chess.Square) bool {
	return from.File == to.File && abs(to.Rank-from.Rank) == 2
}

// SkippedSquare returns the square between from and to on a double step.
func SkippedSquare(from, to chess.Square) chess.Square {
	return chess.Sq(from.File, (from.Rank+to.Rank)/2)
}

// EnPassantVictim returns the square of the pawn captured when a pawn of
// the given colour lands on the en passant target: the square directly
// behind target, toward the mover's own side.
func EnPassantVictim(mover chess.Colour, target chess.Square) chess.Square {
	return chess.Sq(target.File, target.Rank-mover.Forward())
}
