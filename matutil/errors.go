package matutil

import "errors"

// ErrDimensionMismatch is returned when an operation's operands are
// not compatibly shaped (e.g. QR given a non-square matrix).
var ErrDimensionMismatch = errors.New("matutil: dimension mismatch")
