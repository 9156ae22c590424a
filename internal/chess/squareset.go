package chess

// SquareSet is a set of board squares stored as an 8x8 matrix.
// The zero value is an empty set.
type SquareSet struct {
	bits [BoardSize][BoardSize]bool
	n    int
}

// Add inserts sq into the set. Off-board squares are ignored.
func (s *SquareSet) Add(sq Square) {
	if !sq.Valid() || s.bits[sq.File][sq.Rank] {
		return
	}
	s.bits[sq.File][sq.Rank] = true
	s.n++
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s.bits[sq.File][sq.Rank]
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return s.n
}

// Union adds every square of other to s.
func (s *SquareSet) Union(other SquareSet) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if other.bits[file][rank] {
				s.Add(Square{File: file, Rank: rank})
			}
		}
	}
}

// Squares lists the members in file-major order (a1, a2, ..., h8).
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.n)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if s.bits[file][rank] {
				out = append(out, Square{File: file, Rank: rank})
			}
		}
	}
	return out
}

// Matrix returns the set as a [file][rank] boolean matrix.
func (s SquareSet) Matrix() [BoardSize][BoardSize]bool {
	return s.bits
}

// NewSquareSet builds a set from the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s.Add(sq)
	}
	return s
}
