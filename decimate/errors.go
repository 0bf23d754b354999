package decimate

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOverCount          = errors.New("over count")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// SearchExhaustedError reports a calibration that ran out of search
// iterations. LastCount and LastTolerance carry the final search state so
// the caller can retry with a bigger budget or a different target.
type SearchExhaustedError struct {
	LastCount     int
	LastTolerance float64
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("binary search limit reached, count: %d middle: %v", e.LastCount, e.LastTolerance)
}
