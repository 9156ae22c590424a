package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/turnchess/internal/chess"
	cerrors "github.com/lgbarn/turnchess/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to chess.Square
	}{
		{"e2 e4", chess.Sq(4, 1), chess.Sq(4, 3)},
		{"e2e4", chess.Sq(4, 1), chess.Sq(4, 3)},
		{"e2-e4", chess.Sq(4, 1), chess.Sq(4, 3)},
		{"  G1  f3 ", chess.Sq(6, 0), chess.Sq(5, 2)},
		{"e4xd5", chess.Sq(4, 3), chess.Sq(3, 4)},
		{"A7A8", chess.Sq(0, 6), chess.Sq(0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", cerrors.ErrScript},
		{"e2", cerrors.ErrScript},
		{"e2 e4 e5", cerrors.ErrScript},
		{"e9e4", cerrors.ErrInvalidSquare},
		{"e2 i4", cerrors.ErrInvalidSquare},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseMove(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, chess.NoSquare, from)
			assert.Equal(t, chess.NoSquare, to)
		})
	}
}

func TestParseText(t *testing.T) {
	src := `# opening
fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1

e2e4
e7 e5   # reply
g1-f3
`
	s, err := ParseText(strings.NewReader(src), "opening.txt")
	require.NoError(t, err)

	assert.Equal(t, "opening.txt", s.Name)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", s.FEN)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, Step{From: chess.Sq(4, 1), To: chess.Sq(4, 3), Line: 4}, s.Steps[0])
	assert.Equal(t, 5, s.Steps[1].Line)
	assert.Equal(t, "g1-f3", s.Steps[2].String())
}

func TestParseText_Errors(t *testing.T) {
	t.Run("bad move", func(t *testing.T) {
		_, err := ParseText(strings.NewReader("e2e4\nnonsense\n"), "bad.txt")
		require.Error(t, err)

		var perr *cerrors.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, "nonsense", perr.Got)
		assert.ErrorIs(t, err, cerrors.ErrScript)
		assert.Contains(t, err.Error(), "bad.txt:2")
	})

	t.Run("fen after moves", func(t *testing.T) {
		_, err := ParseText(strings.NewReader("e2e4\nfen 8/8/8/8/8/8/8/8 w\n"), "late.txt")
		assert.ErrorIs(t, err, cerrors.ErrScript)
	})
}

func TestParseYAML(t *testing.T) {
	src := `fen: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
moves:
  - e2 e4
  - e8-e7
  - e4e5
`
	s, err := ParseYAML(strings.NewReader(src), "game.yaml")
	require.NoError(t, err)

	assert.Equal(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", s.FEN)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, Step{From: chess.Sq(4, 1), To: chess.Sq(4, 3), Line: 3}, s.Steps[0])
	assert.Equal(t, 5, s.Steps[2].Line)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unknown key", "movez: []\n", 0},
		{"nested list", "moves:\n  - [e2, e4]\n", 2},
		{"bad square", "moves:\n  - e2e4\n  - z9z8\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.src), "bad.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, cerrors.ErrScript)

			var perr *cerrors.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	s, err := ParseYAML(strings.NewReader(""), "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
	assert.Empty(t, s.FEN)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "moves.yml")
	textPath := filepath.Join(dir, "moves.txt")
	require.NoError(t, os.WriteFile(yamlPath, []byte("moves: [e2e4, e7e5]\n"), 0644))
	require.NoError(t, os.WriteFile(textPath, []byte("d2d4\n"), 0644))

	s, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 2)

	s, err = Load(textPath)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 1)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
