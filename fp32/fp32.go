// package fp32 implements IEEE-754 single-precision add, subtract, and
// multiply on top of the integer datapath.
//
// The codec is pure bit slicing.  The arithmetic path never touches host
// floating point: mantissas combine through the ALU and the MDU,
// alignment and normalization go through the shifter, and rounding is
// nearest-even on guard, round, and sticky bits.
package fp32

import (
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/isa"
)

// Num is an unpacked single-precision value: a sign bit, the 8-bit
// biased exponent field, and the 23-bit fraction field.  The implicit
// leading one of normal values is not stored.
type Num struct {
	Sign bitvec.Bit
	Exp  bitvec.Vec
	Frac bitvec.Vec
}

// Unpack slices a 32-bit pattern into its fields.
func Unpack(v bitvec.Vec) Num {
	bitvec.MustWidth(v, isa.F32Bits)
	return Num{
		Sign: v.Get(isa.F32Bits - 1),
		Exp:  v.Slice(isa.F32FracBits, isa.F32Bits-1),
		Frac: v.Slice(0, isa.F32FracBits),
	}
}

// Pack assembles the fields back into a 32-bit pattern.
// Pack(Unpack(x)) == x for every pattern, special values included.
func Pack(n Num) bitvec.Vec {
	bitvec.MustWidth(n.Exp, isa.F32ExpBits)
	bitvec.MustWidth(n.Frac, isa.F32FracBits)
	return bitvec.Concat(bitvec.Concat(n.Frac, n.Exp), bitvec.FromBits(n.Sign))
}

// Class is the operand classification computed once at the start of
// each operation.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "inf"
	case ClassNaN:
		return "nan"
	}
	return "unknown"
}

// Classify tags n by its exponent and fraction fields.
func Classify(n Num) Class {
	expOnes := n.Exp.Equal(bitvec.Ones(isa.F32ExpBits))
	expZero := n.Exp.IsZero()
	fracZero := n.Frac.IsZero()
	switch {
	case expOnes && fracZero:
		return ClassInf
	case expOnes:
		return ClassNaN
	case expZero && fracZero:
		return ClassZero
	case expZero:
		return ClassSubnormal
	}
	return ClassNormal
}

// Zero returns a signed zero.
func Zero(sign bitvec.Bit) Num {
	return Num{Sign: sign, Exp: bitvec.New(isa.F32ExpBits), Frac: bitvec.New(isa.F32FracBits)}
}

// Inf returns a signed infinity.
func Inf(sign bitvec.Bit) Num {
	return Num{Sign: sign, Exp: bitvec.Ones(isa.F32ExpBits), Frac: bitvec.New(isa.F32FracBits)}
}

// QNaN returns the canonical quiet NaN, 0x7FC00000.
func QNaN() Num {
	frac := bitvec.New(isa.F32FracBits)
	frac.Put(isa.F32FracBits-1, 1)
	return Num{Exp: bitvec.Ones(isa.F32ExpBits), Frac: frac}
}
