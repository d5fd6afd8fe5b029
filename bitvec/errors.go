package bitvec

import "fmt"

// OutOfRangeError is the panic value for a bit index outside the vector
// width.  It is always a caller bug.
type OutOfRangeError struct {
	Index int
	Width int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("bitvec: index %d out of range for width %d", e.Index, e.Width)
}

// WidthError is the panic value for mismatched operand widths.  It is
// always a caller bug.
type WidthError struct {
	Got  int
	Want int
}

func (e WidthError) Error() string {
	return fmt.Sprintf("bitvec: width %d, want %d", e.Got, e.Want)
}

// MustMatch panics with a WidthError unless a and b have equal widths.
func MustMatch(a, b Vec) {
	if a.Width() != b.Width() {
		panic(WidthError{Got: b.Width(), Want: a.Width()})
	}
}

// MustWidth panics with a WidthError unless v has width w.
func MustWidth(v Vec, w int) {
	if v.Width() != w {
		panic(WidthError{Got: v.Width(), Want: w})
	}
}
