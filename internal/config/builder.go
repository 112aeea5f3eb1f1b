package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartPlacement sets the placement replays start from.
func (b *ConfigBuilder) WithStartPlacement(placement string) *ConfigBuilder {
	b.cfg.StartPlacement = placement
	return b
}

// WithRookCornerRevocation enables rook-corner castling revocation.
func (b *ConfigBuilder) WithRookCornerRevocation(enabled bool) *ConfigBuilder {
	b.cfg.RookCornerRevocation = enabled
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Batch.SuppressDuplicates = enabled
	b.cfg.Batch.DuplicateCapacity = capacity
	return b
}

// WithCastling enables printing of castling rights.
func (b *ConfigBuilder) WithCastling(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCastling = enabled
	return b
}

// WithPlacement enables printing of the FEN placement.
func (b *ConfigBuilder) WithPlacement(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowPlacement = enabled
	return b
}

// WithHash enables printing of position keys.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHash = enabled
	return b
}

// WithJSON switches output to JSON.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
