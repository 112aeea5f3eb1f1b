package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessposition-go/internal/config"
	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/hashing"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	Placement string   `json:"placement"`
	Castling  string   `json:"castling"`
	Hash      string   `json:"hash,omitempty"`
	Diagram   []string `json:"diagram"` // rank 8 first
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos engine.Position, oc config.OutputConfig) *JSONPosition {
	jp := &JSONPosition{
		Placement: pos.Placement(),
		Castling:  pos.Castling.String(),
		Diagram:   strings.Split(strings.TrimSuffix(pos.Render(), "\n"), "\n"),
	}
	if oc.ShowHash {
		jp.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(pos))
	}
	return jp
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	oc        config.OutputConfig
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer, oc config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, oc: oc}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer, oc config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, oc: oc, single: true}
}

// WritePosition buffers a position (or writes it immediately in single mode).
func (jw *JSONWriter) WritePosition(pos engine.Position) error {
	jp := PositionToJSON(pos, jw.oc)
	if jw.single {
		return jw.encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Positions: jw.positions})
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
