package fp32

import (
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/mdu"
)

// Mul computes a * b over 32-bit patterns.  Exponents are added through
// the ALU with one bias removed; significands multiply through the
// MDU's shift-add core into a double-width product.
func Mul(a, b bitvec.Vec) bitvec.Vec {
	an, bn := Unpack(a), Unpack(b)
	ac, bc := Classify(an), Classify(bn)
	sign := an.Sign ^ bn.Sign
	switch {
	case ac == ClassNaN || bc == ClassNaN:
		return Pack(QNaN())
	case ac == ClassInf || bc == ClassInf:
		if ac == ClassZero || bc == ClassZero {
			return Pack(QNaN())
		}
		return Pack(Inf(sign))
	case ac == ClassZero || bc == ClassZero:
		return Pack(Zero(sign))
	}

	exp := effExp(an, ac).add(effExp(bn, bc)).sub(expFromInt(isa.F32ExpBias))
	prod := mdu.Mul(
		sig24Of(an, ac).ZeroExtend(isa.WordBits),
		sig24Of(bn, bc).ZeroExtend(isa.WordBits),
		false,
	)

	top := -1
	for i := prod.Width() - 1; i >= 0; i-- {
		if prod.Get(i) == 1 {
			top = i
			break
		}
	}
	if top < 0 {
		return Pack(Zero(sign))
	}
	// a product of two 24-bit significands carries its leading one at
	// bit 46 when both operands are normal; fold any departure from
	// that position into the exponent
	exp = exp.add(expFromInt(top - 2*(isa.F32SigBits-1)))

	sig := bitvec.New(isa.F32SigWorkBits)
	for j := 0; j < isa.F32SigBits; j++ {
		if src := top - (isa.F32SigBits - 1) + j; src >= 0 {
			sig.Put(sigShift+j, prod.Get(src))
		}
	}
	if i := top - isa.F32SigBits; i >= 0 {
		sig.Put(2, prod.Get(i))
	}
	if i := top - isa.F32SigBits - 1; i >= 0 {
		sig.Put(1, prod.Get(i))
	}
	var sticky bitvec.Bit
	for i := 0; i <= top-isa.F32SigBits-2; i++ {
		sticky |= prod.Get(i)
	}
	sig.Put(0, sticky)

	// results below the normal range denormalize before rounding
	if e := exp.int(); e < 1 {
		sig = srlSticky(sig, 1-e)
		exp = expFromInt(1)
	}
	return roundPack(sign, exp, sig)
}
