package fp32

import (
	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/shift"
)

// Working significand layout, LSB first:
//
//	bit 27     headroom for mantissa overflow out of the combine step
//	bit 26     implicit-one position
//	bits 3..26 the 24-bit significand
//	bit 2      guard
//	bit 1      round
//	bit 0      sticky
const (
	sigTop      = isa.F32SigWorkBits - 1
	implicitPos = sigTop - 1
	sigShift    = 3
)

// effExp is the effective exponent: the field value for normals, 1 for
// subnormals and zeros (whose implicit bit is 0).
func effExp(n Num, c Class) expReg {
	if c == ClassNormal {
		return expFromField(n.Exp)
	}
	return expFromInt(1)
}

// sig28Of places the significand, implicit bit included for normals,
// into the working layout with cleared guard bits.
func sig28Of(n Num, c Class) bitvec.Vec {
	sig := bitvec.New(isa.F32SigWorkBits)
	for j := 0; j < isa.F32FracBits; j++ {
		sig.Put(sigShift+j, n.Frac.Get(j))
	}
	if c == ClassNormal {
		sig.Put(implicitPos, 1)
	}
	return sig
}

// sig24Of is the bare 24-bit significand, used by the multiply path.
func sig24Of(n Num, c Class) bitvec.Vec {
	sig := bitvec.New(isa.F32SigBits)
	for j := 0; j < isa.F32FracBits; j++ {
		sig.Put(j, n.Frac.Get(j))
	}
	if c == ClassNormal {
		sig.Put(isa.F32SigBits-1, 1)
	}
	return sig
}

// srlSticky shifts right by n, folding every bit shifted out into the
// sticky position.
func srlSticky(v bitvec.Vec, n int) bitvec.Vec {
	if n <= 0 {
		return v
	}
	w := v.Width()
	var sticky bitvec.Bit
	if n >= w {
		if !v.IsZero() {
			sticky = 1
		}
		out := bitvec.New(w)
		out.Put(0, sticky)
		return out
	}
	for i := 0; i < n; i++ {
		sticky |= v.Get(i)
	}
	out := shift.Srl(v, n)
	out.Put(0, out.Get(0)|sticky)
	return out
}

// roundPack normalizes the working significand against the exponent
// register, rounds to nearest-even, and encodes the result.  Callers
// must have pinned exp at 1 or above; subnormal results keep exp 1 and
// encode a zero exponent field.
func roundPack(sign bitvec.Bit, exp expReg, sig bitvec.Vec) bitvec.Vec {
	top := -1
	for i := sigTop; i >= 0; i-- {
		if sig.Get(i) == 1 {
			top = i
			break
		}
	}
	if top < 0 {
		return Pack(Zero(sign))
	}
	switch {
	case top == sigTop:
		// mantissa overflow out of the combine step
		sig = srlSticky(sig, 1)
		exp = exp.add(expFromInt(1))
	case top < implicitPos:
		// left-normalize, no further than the minimum exponent
		k := implicitPos - top
		if room := exp.sub(expFromInt(1)).int(); k > room {
			k = room
		}
		if k > 0 {
			sig = shift.Sll(sig, k)
			exp = exp.sub(expFromInt(k))
		}
	}

	// round to nearest, ties to even
	g, r, s, low := sig.Get(2), sig.Get(1), sig.Get(0), sig.Get(sigShift)
	sig25 := sig.Slice(sigShift, isa.F32SigWorkBits)
	if g == 1 && (r == 1 || s == 1 || low == 1) {
		sig25, _ = alu.Add(sig25, hostnum.FromUint64(1, sig25.Width()), 0)
	}
	if sig25.Get(isa.F32SigBits) == 1 {
		// rounding carried out of the significand
		sig25 = shift.Srl(sig25, 1)
		exp = exp.add(expFromInt(1))
	}

	if exp.int() >= isa.F32ExpMax {
		return Pack(Inf(sign))
	}
	switch {
	case sig25.Get(isa.F32SigBits-1) == 1:
		return Pack(Num{Sign: sign, Exp: exp.field(), Frac: sig25.Slice(0, isa.F32FracBits)})
	case sig25.IsZero():
		return Pack(Zero(sign))
	}
	// subnormal: exponent pinned at 1 encodes as an all-zero field
	return Pack(Num{Sign: sign, Exp: bitvec.New(isa.F32ExpBits), Frac: sig25.Slice(0, isa.F32FracBits)})
}
