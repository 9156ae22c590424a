package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/turnchess/internal/chess"
)

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a;fill-opacity:0.8"
	labelStyle    = "font-family:sans-serif;fill:#444"
)

var glyphs = [2][chess.NumKinds]string{
	chess.White: {"♔", "♕", "♖", "♗", "♘", "♙"},
	chess.Black: {"♚", "♛", "♜", "♝", "♞", "♟"},
}

// SVG renders a board as an SVG image.
type SVG struct {
	SquareSize  int
	Coordinates bool
}

// NewSVG creates an SVG renderer with squares of the given edge length.
func NewSVG(squareSize int, coordinates bool) *SVG {
	return &SVG{SquareSize: squareSize, Coordinates: coordinates}
}

// Render writes board to w as a complete SVG document.
func (s *SVG) Render(w io.Writer, board *chess.Board, highlight chess.SquareSet) error {
	if s.SquareSize <= 0 {
		return fmt.Errorf("render: square size %d", s.SquareSize)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	sz := s.SquareSize
	margin := 0
	if s.Coordinates {
		margin = sz / 2
	}
	side := margin + chess.BoardSize*sz
	canvas.Start(side, side)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			x, y := s.origin(sq, margin)

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, sz, sz, fill)
			if highlight.Has(sq) {
				canvas.Rect(x, y, sz, sz, highlightFill)
			}

			if p := board.PieceAt(sq); p != nil {
				canvas.Text(x+sz/2, y+sz*4/5, glyphs[p.Colour][p.Kind],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", sz*4/5))
			}
		}
	}

	if s.Coordinates {
		font := fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle", labelStyle, sz/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin+i*sz+sz/2, side-margin/4, string(rune('a'+i)), font)
			canvas.Text(margin/2, (chess.BoardSize-1-i)*sz+sz*3/5, string(rune('1'+i)), font)
		}
	}

	canvas.End()
	return ew.err
}

// origin returns the top-left pixel of sq. Rank 8 is drawn at the top.
func (s *SVG) origin(sq chess.Square, margin int) (x, y int) {
	return margin + sq.File*s.SquareSize, (chess.BoardSize - 1 - sq.Rank) * s.SquareSize
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
