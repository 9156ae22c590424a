package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/turnchess/internal/chess"
)

// mustBoard builds a board from fen or fails the test.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// labels renders a set as sorted square labels for comparison.
func labels(set chess.SquareSet) []string {
	out := []string{}
	for _, sq := range set.Squares() {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

func split(s string) []string {
	if s == "" {
		return []string{}
	}
	out := strings.Fields(s)
	sort.Strings(out)
	return out
}

func pieceAt(t *testing.T, board *chess.Board, label string) *chess.Piece {
	t.Helper()
	sq, err := chess.ParseSquare(label)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", label, err)
	}
	p := board.PieceAt(sq)
	if p == nil {
		t.Fatalf("no piece on %s", label)
	}
	return p
}

func TestLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want string
	}{
		{"white pawn start rank", InitialFEN, "e2", "e3 e4"},
		{"black pawn start rank", InitialFEN, "d7", "d6 d5"},
		{"knight from start", InitialFEN, "g1", "f3 h3"},
		{"rook boxed in", InitialFEN, "a1", ""},
		{"king boxed in", InitialFEN, "e1", ""},
		{
			name: "pawn double step blocked on far square",
			fen:  "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: "e3",
		},
		{
			name: "pawn blocked directly",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: "",
		},
		{
			name: "pawn captures both diagonals",
			fen:  "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: "d5 e5 f5",
		},
		{
			name: "pawn does not capture own colour",
			fen:  "4k3/8/8/3P1P2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: "e5",
		},
		{
			name: "pawn on a-file has no left diagonal",
			fen:  "4k3/8/8/1p6/P7/8/8/4K3 w - - 0 1",
			from: "a4",
			want: "a5 b5",
		},
		{
			name: "pawn on h-file has no right diagonal",
			fen:  "4k3/8/8/8/8/6p1/7P/4K3 w - - 0 1",
			from: "h2",
			want: "g3 h3 h4",
		},
		{
			name: "pawn on last rank has no moves",
			fen:  "P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
			from: "a8",
			want: "",
		},
		{
			name: "black pawn captures downward",
			fen:  "4k3/8/8/4p3/3P1N2/8/8/4K3 b - - 0 1",
			from: "e5",
			want: "d4 e4 f4",
		},
		{
			name: "white en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: "d6 e6",
		},
		{
			name: "black en passant",
			fen:  "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1",
			from: "e4",
			want: "d3 e3",
		},
		{
			name: "en passant target without a victim pawn",
			fen:  "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: "e6",
		},
		{
			name: "rook rays stop at first occupant",
			fen:  "4k3/8/8/8/1p1R2P1/8/8/4K3 w - - 0 1",
			from: "d4",
			want: "b4 c4 e4 f4 d1 d2 d3 d5 d6 d7 d8",
		},
		{
			name: "bishop rays",
			fen:  "4k3/8/8/8/8/8/1p6/B3K3 w - - 0 1",
			from: "a1",
			want: "b2",
		},
		{
			name: "queen in centre",
			fen:  "k7/8/8/8/3Q4/8/8/K7 w - - 0 1",
			from: "d4",
			want: "a4 b4 c4 e4 f4 g4 h4 d1 d2 d3 d5 d6 d7 d8 " +
				"b2 c3 e5 f6 g7 h8 a7 b6 c5 e3 f2 g1",
		},
		{
			name: "knight in corner",
			fen:  "k7/8/8/8/8/8/2P5/N6K w - - 0 1",
			from: "a1",
			want: "b3",
		},
		{
			name: "king next to enemy pieces",
			fen:  "8/8/8/3qk3/4K3/8/8/8 w - - 0 1",
			from: "e4",
			want: "d3 d4 d5 e3 e5 f3 f4 f5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			p := pieceAt(t, board, tt.from)
			got := labels(LegalDestinations(board, p))
			if diff := cmp.Diff(split(tt.want), got); diff != "" {
				t.Errorf("LegalDestinations(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestLegalDestinations_NeverOffBoard(t *testing.T) {
	fens := []string{
		InitialFEN,
		"R6R/8/8/8/8/8/8/R3K2R w - - 0 1",
		"N6N/8/8/8/8/8/8/N3K2N w - - 0 1",
		"Q6Q/8/8/3q4/8/8/8/Q3K2Q w - - 0 1",
		"k7/7P/8/8/8/8/p7/K7 w - - 0 1",
	}
	for _, fen := range fens {
		board := mustBoard(t, fen)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range board.Pieces(colour) {
				for _, sq := range LegalDestinations(board, p).Squares() {
					if !sq.Valid() {
						t.Errorf("%s: %v produced off board square %+v", fen, p, sq)
					}
				}
			}
		}
	}
}

func TestLegalDestinations_DoesNotMutate(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	before := BoardToFEN(board)
	version := board.Version()
	for _, p := range board.Pieces(chess.White) {
		LegalDestinations(board, p)
	}
	if got := BoardToFEN(board); got != before {
		t.Errorf("board changed: %s -> %s", before, got)
	}
	if board.Version() != version {
		t.Error("board version changed by move generation")
	}
}

func TestLegalDestinations_DetachedPiece(t *testing.T) {
	board := NewInitialBoard()
	stray := chess.NewPiece(chess.White, chess.Queen)
	if got := LegalDestinations(board, stray); got.Len() != 0 {
		t.Errorf("detached piece has %d destinations; want 0", got.Len())
	}
	if got := LegalDestinations(board, nil); got.Len() != 0 {
		t.Errorf("nil piece has %d destinations; want 0", got.Len())
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want string
	}{
		{"empty diagonals still attacked", InitialFEN, "e2", "d3 f3"},
		{"a-file pawn", InitialFEN, "a7", "b6"},
		{"h-file pawn", InitialFEN, "h2", "g3"},
		{"last rank pawn", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := labels(PawnAttacks(pieceAt(t, board, tt.from)))
			if diff := cmp.Diff(split(tt.want), got); diff != "" {
				t.Errorf("PawnAttacks(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestRules_AllLegalDestinationsFor(t *testing.T) {
	board := NewInitialBoard()
	rules := NewRules(board)

	got := labels(rules.AllLegalDestinationsFor(chess.White))
	want := split("a3 a4 b3 b4 c3 c4 d3 d4 e3 e4 f3 f4 g3 g4 h3 h4")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllLegalDestinationsFor(White) mismatch (-want +got):\n%s", diff)
	}

	t.Run("cache invalidated by mutation", func(t *testing.T) {
		pawn := board.Remove(chess.Sq(4, 1))
		if err := board.Place(pawn, chess.Sq(4, 3)); err != nil {
			t.Fatalf("Place: %v", err)
		}
		all := rules.AllLegalDestinationsFor(chess.White)
		if !all.Has(chess.Sq(4, 4)) {
			t.Error("e5 missing after pawn moved to e4")
		}
		if !all.Has(chess.Sq(4, 1)) {
			t.Error("e2 missing after it was vacated")
		}
	})

	t.Run("matches per piece union", func(t *testing.T) {
		var want chess.SquareSet
		for _, p := range board.Pieces(chess.Black) {
			want.Union(rules.LegalDestinationsFor(p))
		}
		if diff := cmp.Diff(labels(want), labels(rules.AllLegalDestinationsFor(chess.Black))); diff != "" {
			t.Errorf("union mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRules_AttackedSquares(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	rules := NewRules(board)
	got := labels(rules.AttackedSquares(chess.White))
	want := split("d3 f3 d1 d2 f1 f2")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AttackedSquares(White) mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleStepHelpers(t *testing.T) {
	if !IsDoubleStep(chess.Sq(3, 6), chess.Sq(3, 4)) {
		t.Error("d7-d5 not a double step")
	}
	if IsDoubleStep(chess.Sq(3, 6), chess.Sq(3, 5)) {
		t.Error("d7-d6 reported as a double step")
	}
	if got := SkippedSquare(chess.Sq(3, 6), chess.Sq(3, 4)); got != chess.Sq(3, 5) {
		t.Errorf("SkippedSquare(d7, d5) = %v; want d6", got)
	}
	if got := EnPassantVictim(chess.White, chess.Sq(3, 5)); got != chess.Sq(3, 4) {
		t.Errorf("EnPassantVictim(White, d6) = %v; want d5", got)
	}
	if got := EnPassantVictim(chess.Black, chess.Sq(3, 2)); got != chess.Sq(3, 3) {
		t.Errorf("EnPassantVictim(Black, d3) = %v; want d4", got)
	}
}
