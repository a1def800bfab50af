package fregex

import "github.com/coregx/fregex/meta"

// Error is the error type returned by every constructor.
type Error = meta.Error

// ConfigError reports an invalid Config field. It is wrapped by an
// ErrArgumentError.
type ConfigError = meta.ConfigError

var (
	// ErrSyntaxError matches, via errors.Is, a pattern rejected by the full
	// engine.
	ErrSyntaxError = meta.ErrSyntaxError

	// ErrArgumentError matches, via errors.Is, an empty pattern set or an
	// invalid Config.
	ErrArgumentError = meta.ErrArgumentError
)
