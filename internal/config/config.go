// Package config provides configuration for the chessboard tool.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/errors"
)

// OutputConfig controls what is printed for each resulting position.
type OutputConfig struct {
	ShowCastling  bool // Print the castling rights line
	ShowPlacement bool // Print the FEN placement field
	ShowHash      bool // Print the Zobrist key
	JSON          bool // Emit JSON instead of diagrams
}

// NewOutputConfig returns the default output settings: diagram only.
func NewOutputConfig() OutputConfig {
	return OutputConfig{}
}

// BatchConfig controls replaying many lines at once.
type BatchConfig struct {
	Workers            int  // Number of replay goroutines
	BufferSize         int  // Channel buffer between stages
	SuppressDuplicates bool // Drop results whose final position was already printed
	DuplicateCapacity  int  // Max remembered positions (0 = unlimited)
}

// NewBatchConfig returns the default batch settings.
func NewBatchConfig() BatchConfig {
	return BatchConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Placement the replay starts from when no -fen is given.
	StartPlacement string

	// Revoke castling flags when a rook corner is vacated or captured on.
	RookCornerRevocation bool

	Output OutputConfig
	Batch  BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:      1,
		StartPlacement: engine.StartPlacement,
		Output:         NewOutputConfig(),
		Batch:          NewBatchConfig(),
		OutputFile:     os.Stdout,
		LogFile:        os.Stderr,
	}
}

// ApplyOptions translates the configuration into move application options.
func (c *Config) ApplyOptions() []engine.ApplyOption {
	if c.RookCornerRevocation {
		return []engine.ApplyOption{engine.WithRookCornerRevocation()}
	}
	return nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Batch.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Batch.Workers)
	}
	if c.Batch.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size %d", c.Batch.BufferSize)
	}
	if c.Batch.DuplicateCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate capacity %d", c.Batch.DuplicateCapacity)
	}
	if _, err := engine.FromFEN(c.StartPlacement); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "start placement: %v", err)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "nil output stream")
	}
	return nil
}
