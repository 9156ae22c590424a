package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/engine"
)

// MustBoard builds a board from a FEN string.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// MustSquare parses a square label like "e4".
// It calls t.Fatal if the label is invalid.
func MustSquare(t testing.TB, label string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(label)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", label, err)
	}
	return sq
}

// SquareList returns the labels of a set, sorted, for cmp-friendly
// comparison. An empty set gives an empty, non-nil slice.
func SquareList(set chess.SquareSet) []string {
	out := []string{}
	for _, sq := range set.Squares() {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

// Labels splits a space separated list of square labels and sorts it so it
// can be compared against SquareList.
func Labels(s string) []string {
	out := strings.Fields(s)
	if out == nil {
		out = []string{}
	}
	sort.Strings(out)
	return out
}
