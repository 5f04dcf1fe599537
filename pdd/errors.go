package pdd

import "github.com/pkg/errors"

// Configuration errors. Params.Validate wraps one of these, so callers can
// tell them apart with errors.Cause.
var (
	ErrSampleSize    = errors.New("sample size must be at least 1")
	ErrParams        = errors.New("kappa and theta must be finite")
	ErrDiscount      = errors.New("kappa must be greater than -1")
	ErrConcentration = errors.New("theta must be kappa times a whole population size m >= 1 when kappa > 0, or greater than kappa otherwise")
)

// ErrInvariant reports that the counts a run produced don't add up to the
// requested sample size. It indicates a bug, not bad input.
var ErrInvariant = errors.New("species counts do not sum to sample size")
