// Package errors provides sentinel errors and error types for turnchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrRejected indicates a proposed move was refused. The board is
	// unchanged whenever this is returned.
	ErrRejected = errors.New("move rejected")

	// ErrNoPiece indicates there is no piece on the origin square.
	ErrNoPiece = errors.New("no piece on origin square")

	// ErrWrongTurn indicates the piece on the origin square belongs to
	// the side not on move.
	ErrWrongTurn = errors.New("piece does not belong to the side to move")

	// ErrIllegalDestination indicates the destination is not in the
	// piece's legal-destination set.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrOffBoard indicates a coordinate outside the 8x8 board.
	ErrOffBoard = errors.New("square off board")

	// ErrSquareOccupied indicates an attempt to place a piece on an
	// occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square label.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScript indicates a malformed move script.
	ErrScript = errors.New("invalid move script")
)

// MoveError wraps errors with move context: the ply it was attempted at
// and the origin and destination labels.
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move was attempted at (0 if unknown)
	From string // Origin square label
	To   string // Destination square label
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for FEN, config and move script errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add file location
	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			} else {
				loc = "line "
			}
			loc += fmt.Sprintf("%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
