// Package guard holds the precondition checks shared by the formula packages.
// A formula whose expression divides by one of its arguments (or by a value
// derived from one) rejects a zero denominator instead of letting Inf/NaN
// escape into a caller's books.
package guard

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

// NonZero rejects v == 0 before v reaches a division. The returned error
// names the offending argument and unwraps to commerr.ErrInvalidArgument.
func NonZero(name string, v float64) error {
	if v == 0 {
		return fmt.Errorf("%w: %s must not be zero", commerr.ErrInvalidArgument, name)
	}

	return nil
}

// NonZeroInt is NonZero for integer arguments.
func NonZeroInt(name string, v int) error {
	if v == 0 {
		return fmt.Errorf("%w: %s must not be zero", commerr.ErrInvalidArgument, name)
	}

	return nil
}

// EqualLen rejects paired slices of different lengths.
func EqualLen(nameA, nameB string, lenA, lenB int) error {
	if lenA != lenB {
		return fmt.Errorf("%w: %s and %s must have the same length", commerr.ErrInvalidArgument, nameA, nameB)
	}

	return nil
}
