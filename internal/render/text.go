// Package render draws boards for people: as terminal text and as SVG.
// Renderers only read a board and an optional set of highlighted squares.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/turnchess/internal/chess"
)

// Renderer draws a board, marking the squares in highlight.
type Renderer interface {
	Render(w io.Writer, board *chess.Board, highlight chess.SquareSet) error
}

var (
	_ Renderer = (*Text)(nil)
	_ Renderer = (*SVG)(nil)
)

// Text renders a board as text with rank 8 at the top.
type Text struct {
	// Plain disables ANSI colour.
	Plain bool
	// Coordinates prints rank numbers and file letters.
	Coordinates bool

	light     color.Attribute
	dark      color.Attribute
	highlight color.Attribute
	white     []color.Attribute
	black     []color.Attribute
}

// NewText creates a text renderer.
func NewText(plain, coordinates bool) *Text {
	return &Text{
		Plain:       plain,
		Coordinates: coordinates,
		light:       color.BgHiWhite,
		dark:        color.BgCyan,
		highlight:   color.BgYellow,
		white:       []color.Attribute{color.FgHiRed, color.Bold},
		black:       []color.Attribute{color.FgBlack, color.Bold},
	}
}

// Render writes board to w. Squares in highlight are marked.
func (t *Text) Render(w io.Writer, board *chess.Board, highlight chess.SquareSet) error {
	bw := bufio.NewWriter(w)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if t.Coordinates {
			bw.WriteByte(byte('1' + rank))
			bw.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			if t.Plain {
				bw.WriteString(plainCell(board.PieceAt(sq), highlight.Has(sq)))
			} else {
				bw.WriteString(t.colourCell(sq, board.PieceAt(sq), highlight.Has(sq)))
			}
		}
		bw.WriteByte('\n')
	}
	if t.Coordinates {
		bw.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteByte(' ')
			bw.WriteByte(byte('a' + file))
			if !t.Plain {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// plainCell is two characters wide: a marker and the piece letter.
func plainCell(p *chess.Piece, marked bool) string {
	mark := byte(' ')
	if marked {
		mark = '*'
	}
	letter := byte('.')
	if p != nil {
		letter = p.Letter()
	} else if marked {
		return " *"
	}
	return string([]byte{mark, letter})
}

// colourCell is three characters wide with the square colour as background.
func (t *Text) colourCell(sq chess.Square, p *chess.Piece, marked bool) string {
	bg := t.dark
	if (sq.File+sq.Rank)%2 == 1 {
		bg = t.light
	}
	if marked {
		bg = t.highlight
	}
	if p == nil {
		return color.New(bg).Sprint("   ")
	}
	fg := t.white
	if p.Colour == chess.Black {
		fg = t.black
	}
	attrs := append([]color.Attribute{bg}, fg...)
	return color.New(attrs...).Sprintf(" %c ", p.Letter())
}
