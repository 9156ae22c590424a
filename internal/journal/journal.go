// Package journal records game events as JSON lines, one object per
// event, in the order the game delivers them.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/game"
)

// Event names used in Entry.Event.
const (
	EventCapture = "capture"
	EventMove    = "move"
	EventEnd     = "end"
)

// Entry is one journal line.
type Entry struct {
	Seq   int    `json:"seq"`
	Game  string `json:"game"`
	Event string `json:"event"`
	Ply   int    `json:"ply,omitempty"`

	Colour string `json:"colour,omitempty"` // "white" or "black"
	Piece  string `json:"piece,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Square string `json:"square,omitempty"` // capture square

	Captured  string `json:"captured,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Winner    string `json:"winner,omitempty"`
}

// Journal is a game.Listener that writes each event to an io.Writer.
// Write errors are sticky and reported by Err and Close.
type Journal struct {
	w       io.Writer
	bw      *bufio.Writer
	enc     *json.Encoder
	gameID  string
	seq     int
	entries []Entry
	err     error
}

var _ game.Listener = (*Journal)(nil)

// New creates a journal writing to w. A random game ID is generated when
// gameID is empty. A nil w keeps entries in memory only.
func New(w io.Writer, gameID string) *Journal {
	if gameID == "" {
		gameID = uuid.NewString()
	}
	j := &Journal{w: w, gameID: gameID}
	if w != nil {
		j.bw = bufio.NewWriter(w)
		j.enc = json.NewEncoder(j.bw)
	}
	return j
}

// GameID returns the ID stamped on every entry.
func (j *Journal) GameID() string {
	return j.gameID
}

// Entries returns a copy of the entries recorded so far.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Err returns the first write error.
func (j *Journal) Err() error {
	return j.err
}

// OnPieceCaptured implements game.Listener.
func (j *Journal) OnPieceCaptured(e game.CaptureEvent) {
	j.record(Entry{
		Event:  EventCapture,
		Colour: colourName(e.Colour),
		Piece:  pieceName(e.Kind),
		Square: e.Square.String(),
	})
}

// OnMoveCommitted implements game.Listener.
func (j *Journal) OnMoveCommitted(e game.MoveEvent) {
	entry := Entry{
		Event:     EventMove,
		Ply:       e.Ply,
		Colour:    colourName(e.Colour),
		Piece:     pieceName(e.Kind),
		From:      e.From.String(),
		To:        e.To.String(),
		EnPassant: e.EnPassant,
	}
	if e.Captured != nil {
		entry.Captured = pieceName(e.Captured.Kind)
	}
	if e.Promoted {
		entry.Promotion = pieceName(chess.Queen)
	}
	if e.GameEnded {
		entry.Winner = colourName(e.Winner)
	}
	j.record(entry)
}

// OnGameEnded implements game.Listener.
func (j *Journal) OnGameEnded(e game.GameEndEvent) {
	j.record(Entry{Event: EventEnd, Ply: e.Ply, Winner: colourName(e.Winner)})
}

func (j *Journal) record(e Entry) {
	j.seq++
	e.Seq = j.seq
	e.Game = j.gameID
	j.entries = append(j.entries, e)

	if j.enc == nil || j.err != nil {
		return
	}
	if err := j.enc.Encode(&e); err != nil {
		j.err = fmt.Errorf("journal: %w", err)
	}
}

// Flush writes buffered entries to the underlying writer.
func (j *Journal) Flush() error {
	if j.bw == nil {
		return j.err
	}
	if err := j.bw.Flush(); err != nil && j.err == nil {
		j.err = fmt.Errorf("journal: %w", err)
	}
	return j.err
}

// Close flushes the journal and closes the underlying writer if it is an
// io.Closer.
func (j *Journal) Close() error {
	err := j.Flush()
	if c, ok := j.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Read decodes a journal written by Journal.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	dec := json.NewDecoder(r)
	for {
		var e Entry
		if err := dec.Decode(&e); err == io.EOF {
			return entries, nil
		} else if err != nil {
			return entries, fmt.Errorf("journal entry %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceName returns the lower case kind name, e.g. "knight".
func pieceName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
