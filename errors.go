package zzre

import (
	"errors"
	"fmt"
)

var (
	// ErrQuantifierPlacement is reported when * or + has nothing to repeat:
	// at the start of a pattern, or straight after another quantifier.
	ErrQuantifierPlacement = errors.New("quantifier has nothing to repeat")

	// ErrUnsupportedCharacter is reported for pattern characters outside
	// ASCII.
	ErrUnsupportedCharacter = errors.New("unsupported character")
)

// SyntaxError describes a malformed pattern. Err is one of the sentinel
// errors above.
type SyntaxError struct {
	Pattern string
	Offset  int
	Char    rune
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("compiling %q: %v: %q at offset %d", e.Pattern, e.Err, e.Char, e.Offset)
}

// Unwrap returns the underlying sentinel error.
func (e *SyntaxError) Unwrap() error { return e.Err }
