package tfmir

import "github.com/pkg/errors"

// All conversion failures are fatal and fall in one of two classes, exposed
// as sentinels so callers can tell them apart with errors.Is.
var (
	// ErrUnsupportedOp reports a source op kind with no conversion rule.
	ErrUnsupportedOp = errors.New("unsupported op kind")

	// ErrUnsupportedPattern reports a source op of a supported kind whose
	// configuration cannot be expressed in the output net: a non-identity
	// transpose, a concat off the channel axis, a mean over non-spatial axes,
	// an unknown padding mode or a constant of an unsupported type.
	ErrUnsupportedPattern = errors.New("unsupported op pattern")
)
