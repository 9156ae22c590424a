// Package script reads move sequences for replay. Two formats are
// understood: YAML documents with a "moves" list and an optional "fen",
// and plain text with one move per line.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/errors"
)

// Step is a single proposed move.
type Step struct {
	From chess.Square
	To   chess.Square
	Line int // source line, 0 when unknown
}

// String returns the move as "e2-e4".
func (s Step) String() string {
	return s.From.String() + "-" + s.To.String()
}

// Script is a parsed move sequence.
type Script struct {
	Name  string
	FEN   string // starting position, empty for the standard one
	Steps []Step
}

// ParseMove parses a move written as "e2 e4", "e2-e4", "e2xd3" or "e2e4".
func ParseMove(s string) (from, to chess.Square, err error) {
	text := strings.NewReplacer("-", " ", "x", " ", "X", " ").Replace(strings.TrimSpace(s))
	fields := strings.Fields(text)
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("%w: malformed move %q", errors.ErrScript, s)
	}
	if from, err = chess.ParseSquare(fields[0]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	if to, err = chess.ParseSquare(fields[1]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}

// ParseText reads one move per line. Blank lines and text after '#' are
// ignored. A line "fen <position>" before the first move sets the start.
func ParseText(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if rest, ok := cutPrefixFold(text, "fen"); ok {
			if len(s.Steps) > 0 {
				return nil, &errors.ParseError{
					Err:      errors.ErrScript,
					File:     name,
					Line:     line,
					Expected: "fen before the first move",
				}
			}
			s.FEN = strings.TrimSpace(rest)
			continue
		}

		from, to, err := ParseMove(text)
		if err != nil {
			return nil, &errors.ParseError{
				Err:      fmt.Errorf("%w: %w", errors.ErrScript, err),
				File:     name,
				Line:     line,
				Expected: "move like e2e4",
				Got:      text,
			}
		}
		s.Steps = append(s.Steps, Step{From: from, To: to, Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

// document is the YAML script layout. Moves are kept as nodes so errors
// can report their position.
type document struct {
	FEN   string      `yaml:"fen"`
	Moves []yaml.Node `yaml:"moves"`
}

// ParseYAML reads a YAML script.
func ParseYAML(r io.Reader, name string) (*Script, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, &errors.ParseError{Err: fmt.Errorf("%w: %v", errors.ErrScript, err), File: name}
	}

	s := &Script{Name: name, FEN: strings.TrimSpace(doc.FEN)}
	for i := range doc.Moves {
		node := &doc.Moves[i]
		if node.Kind != yaml.ScalarNode {
			return nil, &errors.ParseError{
				Err:      errors.ErrScript,
				File:     name,
				Line:     node.Line,
				Column:   node.Column,
				Expected: "move string",
				Got:      kindName(node.Kind),
			}
		}
		from, to, err := ParseMove(node.Value)
		if err != nil {
			return nil, &errors.ParseError{
				Err:      fmt.Errorf("%w: %w", errors.ErrScript, err),
				File:     name,
				Line:     node.Line,
				Column:   node.Column,
				Expected: "move like e2e4",
				Got:      node.Value,
			}
		}
		s.Steps = append(s.Steps, Step{From: from, To: to, Line: node.Line})
	}
	return s, nil
}

// Load reads the script in filename. Files ending in .yaml or .yml are
// parsed as YAML, everything else as text.
func Load(filename string) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(f, filename)
	default:
		return ParseText(f, filename)
	}
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	rest := s[len(prefix):]
	if rest[0] != ' ' && rest[0] != '\t' && rest[0] != ':' {
		return s, false
	}
	return strings.TrimPrefix(rest, ":"), true
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
