package render

import "github.com/pkg/errors"

// The three ways a render can fail. Callers match with errors.Is;
// the wrapped messages carry the stage/band detail.
var(
	ErrBadConfig          = errors.New("invalid render configuration")
	ErrInvalidBandData    = errors.New("invalid band data")
	ErrResolutionMismatch = errors.New("band resolution mismatch")
)
