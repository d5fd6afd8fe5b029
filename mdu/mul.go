// package mdu implements the multiply/divide unit on top of the ALU and
// the shifter.
//
// Multiplication is shift-and-add over operands extended to double
// width; division is the restoring algorithm.  Both are bit-serial: each
// iteration depends on the accumulator or remainder left by the one
// before, and both expose their per-iteration state as a restartable
// trace sequence.
package mdu

import (
	"iter"

	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/shift"
)

// MulStep is the multiplier state after one shift-add iteration.
type MulStep struct {
	// Index counts iterations from 0.
	Index int
	// Bit is the multiplier bit examined this iteration.
	Bit bitvec.Bit
	// Acc is a snapshot of the double-width accumulator after the
	// iteration.
	Acc bitvec.Vec
}

// Mul multiplies two equal-width vectors and returns the double-width
// product.  In signed mode the operands are sign-extended to double
// width first; the plain two's-complement shift-add result is then
// correct with no fixup pass.
func Mul(a, b bitvec.Vec, signed bool) bitvec.Vec {
	var out bitvec.Vec
	for range mulSteps(a, b, signed, &out) {
	}
	return out
}

// MulSteps returns the per-iteration trace of Mul(a, b, signed).  The
// sequence re-runs the multiplier each time it is ranged over.
func MulSteps(a, b bitvec.Vec, signed bool) iter.Seq[MulStep] {
	return func(yield func(MulStep) bool) {
		mulSteps(a, b, signed, new(bitvec.Vec))(yield)
	}
}

func mulSteps(a, b bitvec.Vec, signed bool, out *bitvec.Vec) iter.Seq[MulStep] {
	bitvec.MustMatch(a, b)
	w2 := a.Width() + b.Width()
	var m, q bitvec.Vec
	if signed {
		m, q = a.SignExtend(w2), b.SignExtend(w2)
	} else {
		m, q = a.ZeroExtend(w2), b.ZeroExtend(w2)
	}
	return func(yield func(MulStep) bool) {
		acc := bitvec.New(w2)
		for i := 0; i < w2; i++ {
			bit := q.Get(i)
			if bit == 1 {
				acc, _ = alu.Add(acc, shift.Sll(m, i), 0)
			}
			if !yield(MulStep{Index: i, Bit: bit, Acc: acc.Clone()}) {
				return
			}
		}
		*out = acc
	}
}
