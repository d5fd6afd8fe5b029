// package alu implements the integer arithmetic-logic unit.
//
// Addition is a ripple of single-bit full adders from bit 0 upward;
// subtraction is addition of the inverted subtrahend with carry-in 1.
// Flags are derived fresh from each operation, never carried over.
package alu

import (
	"rvcore.org/rvcore/bitvec"
)

// Flags is the condition flag set of one ALU operation.
type Flags struct {
	// N is the sign bit of the result.
	N bitvec.Bit
	// Z is set when every result bit is 0.
	Z bitvec.Bit
	// C is the carry out of the most significant bit.  After Sub,
	// C=1 means no borrow occurred.
	C bitvec.Bit
	// V is signed overflow: the carry into the MSB XOR the carry out
	// of it.
	V bitvec.Bit
}

// fullAdder is a single-bit adder built from boolean gates.
func fullAdder(a, b, cin bitvec.Bit) (sum, cout bitvec.Bit) {
	sum = a ^ b ^ cin
	cout = (a & b) | (cin & (a ^ b))
	return sum, cout
}

// Add computes a + b + cin over equal-width vectors.
func Add(a, b bitvec.Vec, cin bitvec.Bit) (bitvec.Vec, Flags) {
	bitvec.MustMatch(a, b)
	w := a.Width()
	out := bitvec.New(w)
	carry := cin & 1
	var carryInMSB bitvec.Bit
	for i := 0; i < w; i++ {
		if i == w-1 {
			carryInMSB = carry
		}
		var s bitvec.Bit
		s, carry = fullAdder(a.Get(i), b.Get(i), carry)
		out.Put(i, s)
	}
	return out, flagsOf(out, carry, carryInMSB)
}

// Sub computes a - b as a + ^b + 1.
func Sub(a, b bitvec.Vec) (bitvec.Vec, Flags) {
	return Add(a, Not(b), 1)
}

// Neg computes the two's complement of v.
func Neg(v bitvec.Vec) bitvec.Vec {
	out, _ := Sub(bitvec.New(v.Width()), v)
	return out
}

// Not returns the bitwise inverse of v.
func Not(v bitvec.Vec) bitvec.Vec {
	w := v.Width()
	out := bitvec.New(w)
	for i := 0; i < w; i++ {
		out.Put(i, v.Get(i)^1)
	}
	return out
}

// And returns the bitwise AND of equal-width vectors.
func And(a, b bitvec.Vec) bitvec.Vec {
	return gate2(a, b, func(x, y bitvec.Bit) bitvec.Bit { return x & y })
}

// Or returns the bitwise OR of equal-width vectors.
func Or(a, b bitvec.Vec) bitvec.Vec {
	return gate2(a, b, func(x, y bitvec.Bit) bitvec.Bit { return x | y })
}

// Xor returns the bitwise XOR of equal-width vectors.
func Xor(a, b bitvec.Vec) bitvec.Vec {
	return gate2(a, b, func(x, y bitvec.Bit) bitvec.Bit { return x ^ y })
}

func gate2(a, b bitvec.Vec, fn func(x, y bitvec.Bit) bitvec.Bit) bitvec.Vec {
	bitvec.MustMatch(a, b)
	w := a.Width()
	out := bitvec.New(w)
	for i := 0; i < w; i++ {
		out.Put(i, fn(a.Get(i), b.Get(i)))
	}
	return out
}

func flagsOf(out bitvec.Vec, cout, carryInMSB bitvec.Bit) Flags {
	f := Flags{
		N: out.Sign(),
		C: cout,
		V: carryInMSB ^ cout,
	}
	if out.IsZero() {
		f.Z = 1
	}
	return f
}
