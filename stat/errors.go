package stat

import "errors"

// Every message is prefixed with "stat: ". Functions add context by wrapping
// with fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrShapeMismatch is returned when x, y (and weights) differ in length.
	ErrShapeMismatch = errors.New("stat: x, y and weights must have the same length")

	// ErrUnsupportedBinningMode is returned for a binning kind other than
	// Quantiles or Uniform.
	ErrUnsupportedBinningMode = errors.New("stat: unsupported binning mode")

	// ErrData signals input the statistics are undefined for: no finite
	// samples, zero total weight, negative weights or a variable without
	// variance.
	ErrData = errors.New("stat: degenerate data")

	// ErrBinCount is returned when fewer than one bin is requested.
	ErrBinCount = errors.New("stat: bin count must be at least 1")
)
