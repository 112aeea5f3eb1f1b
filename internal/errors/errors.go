// Package errors provides sentinel errors and error types for the position library.
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
	// ErrInvalidFEN indicates a malformed FEN placement field.
	ErrInvalidFEN = errors.New("invalid FEN placement")

	// ErrInvalidCoordinate indicates a square outside the 8x8 board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnsupportedMove indicates a move kind whose behavior is not defined yet.
	ErrUnsupportedMove = errors.New("unsupported move kind")

	// ErrInvalidMoveText indicates move text that cannot be decoded.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseErrorKind classifies FEN placement faults.
type ParseErrorKind int

const (
	// UnknownPieceLetter is a letter that is not one of kqrbnp in either case.
	UnknownPieceLetter ParseErrorKind = iota + 1
	// RankOverflow is a file index running past the board edge, or a rank
	// separator moving below rank 1.
	RankOverflow
)

// String returns the name of the fault kind.
func (k ParseErrorKind) String() string {
	switch k {
	case UnknownPieceLetter:
		return "unknown piece letter"
	case RankOverflow:
		return "rank overflow"
	default:
		return "unknown"
	}
}

// ParseError represents a FEN parsing error with input location context.
// No partial position accompanies a ParseError.
type ParseError struct {
	Err    error          // The underlying error
	Kind   ParseErrorKind // Which fault stopped the scan
	Input  string         // The placement text being parsed
	Offset int            // Byte offset of the offending character (0-based)
	Got    string         // The offending character, if any
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q at offset %d", e.Input, e.Offset))
	}

	if e.Kind != 0 {
		if e.Got != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Kind, e.Got))
		} else {
			parts = append(parts, e.Kind.String())
		}
	}

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

// CoordinateError reports a move field that lies off the board.
type CoordinateError struct {
	Err   error  // The underlying error
	Field string // Which coordinate of the move ("from", "to", "captured")
	X, Y  int
}

// Error returns a formatted error message naming the offending field.
func (e *CoordinateError) Error() string {
	msg := fmt.Sprintf("%s square (%d,%d)", e.Field, e.X, e.Y)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with sequence context: which move of a replay
// failed and its text.
type MoveError struct {
	Err      error  // The underlying error
	Index    int    // 1-based position of the move in its sequence
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("move %d", e.Index)}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("%q", e.MoveText))
	}
	context := strings.Join(parts, " ")

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
