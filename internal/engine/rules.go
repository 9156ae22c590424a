package engine

import (
	"github.com/lgbarn/turnchess/internal/chess"
)

// generator computes the legal destinations of a piece from board
// occupancy alone. Generators never mutate the board.
type generator func(board *chess.Board, p *chess.Piece) chess.SquareSet

// generators maps each kind to its movement rule.
var generators = map[chess.Kind]generator{
	chess.King:   leaper(kingOffsets),
	chess.Queen:  slider(allDirs),
	chess.Rook:   slider(straightDirs),
	chess.Bishop: slider(diagonalDirs),
	chess.Knight: leaper(knightOffsets),
	chess.Pawn:   pawnDestinations,
}

// LegalDestinations returns the squares p may move to on board. Check is
// not considered: a move that leaves the mover's king attacked is still
// listed.
func LegalDestinations(board *chess.Board, p *chess.Piece) chess.SquareSet {
	if p == nil || !p.Square.Valid() || board.PieceAt(p.Square) != p {
		return chess.SquareSet{}
	}
	gen, ok := generators[p.Kind]
	if !ok {
		return chess.SquareSet{}
	}
	return gen(board, p)
}

// Rules answers move queries against a live board. It only reads the
// board; all writes go through the turn controller.
type Rules struct {
	board *chess.Board

	// Per-colour union of destinations, valid while the board version
	// matches.
	cache [2]cachedSet
}

type cachedSet struct {
	valid   bool
	version uint64
	set     chess.SquareSet
}

// NewRules creates a rule engine reading board.
func NewRules(board *chess.Board) *Rules {
	return &Rules{board: board}
}

// Board returns the board the rules read from.
func (r *Rules) Board() *chess.Board {
	return r.board
}

// LegalDestinationsFor returns the legal destinations of p on the live
// board. The result is recomputed on every call.
func (r *Rules) LegalDestinationsFor(p *chess.Piece) chess.SquareSet {
	return LegalDestinations(r.board, p)
}

// AllLegalDestinationsFor returns the union of legal destinations of
// every piece of colour. It exists for display aggregation and carries no
// additional rule semantics. The union is cached until the board changes.
func (r *Rules) AllLegalDestinationsFor(colour chess.Colour) chess.SquareSet {
	c := &r.cache[colour]
	if c.valid && c.version == r.board.Version() {
		return c.set
	}

	var all chess.SquareSet
	for _, p := range r.board.Pieces(colour) {
		all.Union(LegalDestinations(r.board, p))
	}

	*c = cachedSet{valid: true, version: r.board.Version(), set: all}
	return all
}

// AttackedSquares returns the squares colour threatens: pawn diagonals
// regardless of occupancy, plus the destinations of every other piece.
func (r *Rules) AttackedSquares(colour chess.Colour) chess.SquareSet {
	var all chess.SquareSet
	for _, p := range r.board.Pieces(colour) {
		if p.Kind == chess.Pawn {
			all.Union(PawnAttacks(p))
			continue
		}
		all.Union(LegalDestinations(r.board, p))
	}
	return all
}
