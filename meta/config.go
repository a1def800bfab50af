// Package meta implements the strategy layer that decides, per pattern, how
// a search is carried out.
//
// The meta layer coordinates three kinds of work:
//   - Classification: a lexical scan that picks the cheapest correct strategy
//   - Anchoring: literal search for the whole pattern, a prefix or a fragment
//   - Verification: the full regex engine, run only on anchored windows
//
// Strategies, from cheapest to most expensive:
//   - UseLiteral: the pattern is a literal string, no regex engine at search time
//   - UseLongest: anchor on the longest mandatory fragment, verify a window
//   - UsePrefix: anchor on the leading literal, verify the rest of the text
//   - UseFallback: run the full engine over the whole text
//
// The full regex engine is an external collaborator (see Verifier); this
// package never parses or executes regex programs itself.
package meta

import (
	"github.com/rs/zerolog"
)

// Config controls engine construction.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Engine = meta.EngineRE2
//	engine, err := meta.Compile(`[Pp]refix.*:`, config)
type Config struct {
	// Engine selects the full regex engine used for validation, verification
	// and fallback search.
	// Default: EngineStdlib
	Engine EngineKind

	// BlockSize is the Wu-Manber block size for multi-pattern literal sets.
	// Sets whose shortest literal is shorter use Aho-Corasick instead.
	// Default: 2
	BlockSize int

	// EnableHeuristics enables the accelerated strategies. When false every
	// pattern is searched with the full engine (UseFallback), which is useful
	// to compare results and timings.
	// Default: true
	EnableHeuristics bool

	// Logger receives one debug event per compiled engine describing the
	// selected strategy.
	// Default: zerolog.Nop()
	Logger zerolog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Engine:           EngineStdlib,
		BlockSize:        2,
		EnableHeuristics: true,
		Logger:           zerolog.Nop(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Engine: EngineStdlib or EngineRE2
//   - BlockSize: 1 to 3
func (c Config) Validate() error {
	if c.Engine != EngineStdlib && c.Engine != EngineRE2 {
		return &ConfigError{
			Field:   "Engine",
			Message: "unknown engine " + c.Engine.String(),
		}
	}
	if c.BlockSize < 1 || c.BlockSize > 3 {
		return &ConfigError{
			Field:   "BlockSize",
			Message: "must be between 1 and 3",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fregex: invalid config: " + e.Field + ": " + e.Message
}
