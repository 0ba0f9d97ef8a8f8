package peq

import (
	"errors"
	"fmt"
)

var (
	// ErrPatternTooLong is matched by every *LengthError.
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrNotASCII is returned by FromString for input containing bytes >= 0x80.
	ErrNotASCII = errors.New("pattern is not ASCII")
)

// LengthError reports a pattern that does not fit in one register.
type LengthError struct {
	Len   int // pattern length in bytes
	Width int // register width in bits
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("pattern must be <= %d bytes, got %d", e.Width, e.Len)
}

// Is makes errors.Is(err, ErrPatternTooLong) hold for any *LengthError.
func (e *LengthError) Is(target error) bool {
	return target == ErrPatternTooLong
}
