package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/game"
	"github.com/lgbarn/turnchess/internal/render"
	"github.com/lgbarn/turnchess/internal/script"
)

// errQuit ends an interactive session.
var errQuit = errors.New("quit")

// session connects a game to a board renderer and an output stream.
type session struct {
	game  *game.Game
	out   io.Writer
	board render.Renderer // nil prints no board
}

func newSession(g *game.Game, out io.Writer, board render.Renderer) *session {
	s := &session{game: g, out: out, board: board}
	g.Subscribe(game.ListenerFuncs{
		Captured: func(e game.CaptureEvent) {
			fmt.Fprintf(s.out, "%v %v captured on %v\n", e.Colour, e.Kind, e.Square)
		},
		Ended: func(e game.GameEndEvent) {
			fmt.Fprintf(s.out, "%v wins on ply %d. New game.\n", e.Winner, e.Ply)
		},
	})
	return s
}

// replay plays every step of sc. Rejected moves are reported; with
// stopOnReject the first one ends the replay. It returns the number of
// rejected moves.
func (s *session) replay(sc *script.Script, stopOnReject bool) int {
	rejected := 0
	for _, step := range sc.Steps {
		if _, err := s.game.AttemptMove(step.From, step.To); err != nil {
			rejected++
			fmt.Fprintf(s.out, "%s:%d: %v\n", sc.Name, step.Line, err)
			if stopOnReject {
				break
			}
		}
	}
	s.showBoard(chess.SquareSet{})
	return rejected
}

// interact reads commands from r until EOF or "quit".
func (s *session) interact(r io.Reader) error {
	s.showBoard(chess.SquareSet{})
	s.prompt()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := s.command(scanner.Text())
		if err == errQuit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *session) prompt() {
	fmt.Fprintf(s.out, "%v to move> ", s.game.CurrentTurnColor())
}

// command runs one line of input.
func (s *session) command(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
		return nil
	case "board":
		s.showBoard(chess.SquareSet{})
		return nil
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
		return nil
	case "reset":
		s.game.Reset()
		s.showBoard(chess.SquareSet{})
		return nil
	case "moves":
		if len(fields) != 2 {
			return fmt.Errorf("usage: moves <square>")
		}
		sq, err := chess.ParseSquare(fields[1])
		if err != nil {
			return err
		}
		dests := s.game.GetLegalDestinations(sq)
		fmt.Fprintln(s.out, formatSquares(dests))
		s.showBoard(dests)
		return nil
	case "all":
		dests := s.game.GetAllLegalDestinations(s.game.CurrentTurnColor())
		fmt.Fprintln(s.out, formatSquares(dests))
		s.showBoard(dests)
		return nil
	case "attacks":
		attacked := s.game.GetAttackedSquares(s.game.CurrentTurnColor().Opposite())
		fmt.Fprintln(s.out, formatSquares(attacked))
		s.showBoard(attacked)
		return nil
	}

	from, to, err := script.ParseMove(line)
	if err != nil {
		return err
	}
	if _, err := s.game.AttemptMove(from, to); err != nil {
		return err
	}
	s.showBoard(chess.SquareSet{})
	return nil
}

func (s *session) showBoard(highlight chess.SquareSet) {
	if s.board == nil {
		return
	}
	if err := s.board.Render(s.out, s.game.Snapshot(), highlight); err != nil {
		fmt.Fprintf(s.out, "render: %v\n", err)
	}
}

// formatSquares lists a set in file-major order, or "none".
func formatSquares(set chess.SquareSet) string {
	if set.Len() == 0 {
		return "none"
	}
	labels := make([]string, 0, set.Len())
	for _, sq := range set.Squares() {
		labels = append(labels, sq.String())
	}
	return strings.Join(labels, " ")
}

const commandHelp = `Commands:
  e2e4, e2 e4, e2-e4  move a piece
  moves <square>      list where the piece on <square> can go
  all                 list every destination for the side to move
  attacks             list squares the opponent attacks
  board               print the board
  fen                 print the position as FEN
  reset               start a new game
  quit                leave
`
