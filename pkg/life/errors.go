package life

import "errors"

var (
	// ErrInvalidDimension reports a non-positive board dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidDensity reports a density outside [0, 1]. It is a soft
	// condition: the board is still well defined.
	ErrInvalidDensity = errors.New("invalid density")
	// ErrInvalidGrid reports a malformed grid handed to a step strategy.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrUnknownStrategy reports a strategy name with no implementation.
	ErrUnknownStrategy = errors.New("unknown step strategy")
	// ErrInvalidRule reports a rule string that cannot be parsed.
	ErrInvalidRule = errors.New("invalid rule")
)
