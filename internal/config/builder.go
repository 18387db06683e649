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

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithRepetitionThreshold sets how many occurrences of a position draw.
func (b *ConfigBuilder) WithRepetitionThreshold(n int) *ConfigBuilder {
	b.cfg.Rules.RepetitionThreshold = n
	return b
}

// WithHalfMoveLimit sets the half-move clock value that draws.
func (b *ConfigBuilder) WithHalfMoveLimit(n int) *ConfigBuilder {
	b.cfg.Rules.HalfMoveLimit = n
	return b
}

// WithStrictRepetition includes castling and en passant rights in
// repetition identity.
func (b *ConfigBuilder) WithStrictRepetition(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictRepetition = enabled
	return b
}

// WithLogLevel sets the logger level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithDevelopmentLogging switches to console log output.
func (b *ConfigBuilder) WithDevelopmentLogging(enabled bool) *ConfigBuilder {
	b.cfg.Log.Development = enabled
	return b
}

// WithOutputFormat sets the move notation.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithColor controls terminal colours.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithBoard controls the board diagram in text reports.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
