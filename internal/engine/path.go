package engine

import "github.com/lgbarn/turnchess/internal/chess"

// Movement patterns as (file, rank) offsets.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// step marks to as a destination for p if it is on the board and either
// empty or held by the other colour. It reports whether to blocks further
// travel along a ray (off board or occupied).
func step(board *chess.Board, p *chess.Piece, to chess.Square, into *chess.SquareSet) (blocked bool) {
	if !to.Valid() {
		return true
	}
	occupant := board.PieceAt(to)
	if occupant == nil {
		into.Add(to)
		return false
	}
	if occupant.Colour != p.Colour {
		into.Add(to)
	}
	return true
}

// leaper generates destinations for pieces that jump to fixed offsets.
func leaper(offsets [][2]int) generator {
	return func(board *chess.Board, p *chess.Piece) chess.SquareSet {
		var set chess.SquareSet
		for _, off := range offsets {
			if to, ok := p.Square.Offset(off[0], off[1]); ok {
				step(board, p, to, &set)
			}
		}
		return set
	}
}

// slider generates destinations along rays, stopping at the first
// occupied square and including it when it holds an enemy piece.
func slider(dirs [][2]int) generator {
	return func(board *chess.Board, p *chess.Piece) chess.SquareSet {
		var set chess.SquareSet
		for _, dir := range dirs {
			to := p.Square
			for {
				to = chess.Sq(to.File+dir[0], to.Rank+dir[1])
				if step(board, p, to, &set) {
					break
				}
			}
		}
		return set
	}
}
