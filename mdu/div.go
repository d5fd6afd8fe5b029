package mdu

import (
	"errors"
	"iter"

	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/shift"
)

// ErrDivideByZero is returned for an all-zero divisor.  It is detected
// before the iteration loop runs.
var ErrDivideByZero = errors.New("mdu: divide by zero")

// DivStep is the divider state after one restoring-division iteration.
type DivStep struct {
	// Index counts iterations from 0; iteration 0 assembles the most
	// significant quotient bit.
	Index int
	// R is a snapshot of the working remainder register, one bit wider
	// than the operands.
	R bitvec.Vec
	// QBit is the quotient bit produced this iteration.
	QBit bitvec.Bit
}

// Div divides two equal-width vectors and returns quotient and
// remainder.  In signed mode the quotient is negated when the operand
// signs differ and the remainder takes the dividend's sign (truncating
// division).  Dividing INT_MIN by -1 wraps to INT_MIN with remainder 0,
// as two's-complement negation dictates.
func Div(dividend, divisor bitvec.Vec, signed bool) (q, r bitvec.Vec, err error) {
	bitvec.MustMatch(dividend, divisor)
	if divisor.IsZero() {
		return bitvec.Vec{}, bitvec.Vec{}, ErrDivideByZero
	}
	n, m, fixQ, fixR := prepare(dividend, divisor, signed)
	q, r = divLoop(n, m, nil)
	if fixQ {
		q = alu.Neg(q)
	}
	if fixR {
		r = alu.Neg(r)
	}
	return q, r, nil
}

// DivSteps returns the per-iteration trace of the restoring division
// core for Div(dividend, divisor, signed).  The sequence re-runs the
// divider each time it is ranged over.  Sign correction happens after
// the loop and does not appear in the trace.
func DivSteps(dividend, divisor bitvec.Vec, signed bool) (iter.Seq[DivStep], error) {
	bitvec.MustMatch(dividend, divisor)
	if divisor.IsZero() {
		return nil, ErrDivideByZero
	}
	n, m, _, _ := prepare(dividend, divisor, signed)
	return func(yield func(DivStep) bool) {
		divLoop(n, m, yield)
	}, nil
}

// prepare reduces a signed division to an unsigned one over magnitudes,
// reporting which results need negating afterwards.
func prepare(dividend, divisor bitvec.Vec, signed bool) (n, m bitvec.Vec, fixQ, fixR bool) {
	n, m = dividend, divisor
	if !signed {
		return n, m, false, false
	}
	sn, sm := dividend.Sign(), divisor.Sign()
	if sn == 1 {
		n = alu.Neg(n)
	}
	if sm == 1 {
		m = alu.Neg(m)
	}
	// INT_MIN negates to itself; the unsigned core still divides it
	// correctly because the working register carries an extra bit.
	return n, m, sn != sm, sn == 1
}

// divLoop is the restoring-division core.  One iteration per dividend
// bit, most significant first: shift the working remainder left,
// bring in the next dividend bit, subtract the divisor, and either
// keep the difference (quotient bit 1) or restore (quotient bit 0).
func divLoop(n, m bitvec.Vec, yield func(DivStep) bool) (q, r bitvec.Vec) {
	w := n.Width()
	mw := m.ZeroExtend(w + 1)
	reg := bitvec.New(w + 1)
	q = bitvec.New(w)
	for i := w - 1; i >= 0; i-- {
		reg = shift.Sll(reg, 1)
		reg.Put(0, n.Get(i))
		diff, f := alu.Sub(reg, mw)
		var qb bitvec.Bit
		if f.N == 0 {
			reg = diff
			qb = 1
		}
		q.Put(i, qb)
		if yield != nil && !yield(DivStep{Index: w - 1 - i, R: reg.Clone(), QBit: qb}) {
			return q, reg.Slice(0, w)
		}
	}
	return q, reg.Slice(0, w)
}
