// Package output writes replayed positions as text diagrams or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessposition-go/internal/config"
	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/hashing"
)

// PositionWriter is the interface for writing positions to output.
type PositionWriter interface {
	// WritePosition writes a single position.
	WritePosition(pos engine.Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// NewWriter returns the writer selected by oc.
func NewWriter(w io.Writer, oc config.OutputConfig) PositionWriter {
	if oc.JSON {
		return NewJSONWriter(w, oc)
	}
	return NewTextWriter(w, oc)
}

// TextWriter writes each position as an 8-line diagram followed by the
// extra lines enabled in its OutputConfig. Consecutive positions are
// separated by a blank line.
type TextWriter struct {
	w       io.Writer
	oc      config.OutputConfig
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, oc config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, oc: oc}
}

// WritePosition writes pos immediately.
func (tw *TextWriter) WritePosition(pos engine.Position) error {
	if tw.written > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.written++

	if err := pos.Print(tw.w); err != nil {
		return err
	}
	if tw.oc.ShowPlacement {
		if _, err := fmt.Fprintf(tw.w, "placement: %s\n", pos.Placement()); err != nil {
			return err
		}
	}
	if tw.oc.ShowCastling {
		if _, err := fmt.Fprintf(tw.w, "castling: %s\n", pos.Castling); err != nil {
			return err
		}
	}
	if tw.oc.ShowHash {
		if _, err := fmt.Fprintf(tw.w, "hash: %016x\n", hashing.GenerateZobristHash(pos)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// Written returns the number of positions written so far.
func (tw *TextWriter) Written() int {
	return tw.written
}
