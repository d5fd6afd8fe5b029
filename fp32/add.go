package fp32

import (
	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
)

// Add computes a + b over 32-bit patterns.
func Add(a, b bitvec.Vec) bitvec.Vec {
	return addNums(Unpack(a), Unpack(b))
}

// Sub computes a - b by flipping b's sign and adding.
func Sub(a, b bitvec.Vec) bitvec.Vec {
	bn := Unpack(b)
	bn.Sign ^= 1
	return addNums(Unpack(a), bn)
}

func addNums(an, bn Num) bitvec.Vec {
	ac, bc := Classify(an), Classify(bn)
	switch {
	case ac == ClassNaN || bc == ClassNaN:
		return Pack(QNaN())
	case ac == ClassInf && bc == ClassInf:
		if an.Sign != bn.Sign {
			return Pack(QNaN())
		}
		return Pack(Inf(an.Sign))
	case ac == ClassInf:
		return Pack(Inf(an.Sign))
	case bc == ClassInf:
		return Pack(Inf(bn.Sign))
	case ac == ClassZero && bc == ClassZero:
		// -0 + -0 is -0; every other zero pair is +0
		return Pack(Zero(an.Sign & bn.Sign))
	case ac == ClassZero:
		return Pack(bn)
	case bc == ClassZero:
		return Pack(an)
	}

	// order the operands so x carries the larger exponent, then align
	// y's significand to it
	xe, xs, xsig := effExp(an, ac), an.Sign, sig28Of(an, ac)
	ye, ys, ysig := effExp(bn, bc), bn.Sign, sig28Of(bn, bc)
	if xe.less(ye) {
		xe, ye = ye, xe
		xs, ys = ys, xs
		xsig, ysig = ysig, xsig
	}
	ysig = srlSticky(ysig, xe.sub(ye).int())

	if xs == ys {
		sum, _ := alu.Add(xsig, ysig, 0)
		return roundPack(xs, xe, sum)
	}
	diff, f := alu.Sub(xsig, ysig)
	switch {
	case f.Z == 1:
		// exact cancellation rounds to +0
		return Pack(Zero(0))
	case f.C == 0:
		// |y| was larger; take the magnitude the other way around
		diff, _ = alu.Sub(ysig, xsig)
		return roundPack(ys, xe, diff)
	}
	return roundPack(xs, xe, diff)
}
