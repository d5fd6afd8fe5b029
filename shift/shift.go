// package shift implements the barrel shifter.
//
// Shifts are pure bit-index remapping; no host shift operators touch the
// simulated value.  Bits moved past the width are discarded, the shifter
// raises no overflow condition of its own.
package shift

import (
	"fmt"

	"rvcore.org/rvcore/bitvec"
)

// AmountError is the panic value for a negative shift amount.
type AmountError struct {
	Amount int
}

func (e AmountError) Error() string {
	return fmt.Sprintf("shift: invalid shift amount %d", e.Amount)
}

// Sll shifts v left by n, filling with zeros at the low end.
func Sll(v bitvec.Vec, n int) bitvec.Vec {
	checkAmount(n)
	w := v.Width()
	out := bitvec.New(w)
	for i := n; i < w; i++ {
		out.Put(i, v.Get(i-n))
	}
	return out
}

// Srl shifts v right by n, filling with zeros at the high end.
func Srl(v bitvec.Vec, n int) bitvec.Vec {
	checkAmount(n)
	w := v.Width()
	out := bitvec.New(w)
	for i := 0; i+n < w; i++ {
		out.Put(i, v.Get(i+n))
	}
	return out
}

// Sra shifts v right by n, replicating the original sign bit into every
// vacated high position.
func Sra(v bitvec.Vec, n int) bitvec.Vec {
	checkAmount(n)
	w := v.Width()
	s := v.Sign()
	out := bitvec.New(w)
	for i := 0; i < w; i++ {
		if i+n < w {
			out.Put(i, v.Get(i+n))
		} else {
			out.Put(i, s)
		}
	}
	return out
}

func checkAmount(n int) {
	if n < 0 {
		panic(AmountError{Amount: n})
	}
}
