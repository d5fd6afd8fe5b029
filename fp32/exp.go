package fp32

import (
	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
)

// expReg is the FPU's working exponent register: a two's-complement
// vector wide enough for the sum of two biased exponents and for the
// negative range reached while denormalizing.  All arithmetic on it
// goes through the ALU; host conversion is used only to derive shift
// micro-step counts and for range checks.
type expReg struct {
	v bitvec.Vec
}

func expFromField(f bitvec.Vec) expReg {
	return expReg{v: f.ZeroExtend(isa.F32ExpWorkBits)}
}

func expFromInt(x int) expReg {
	return expReg{v: hostnum.FromInt(x, isa.F32ExpWorkBits)}
}

func (e expReg) add(o expReg) expReg {
	r, _ := alu.Add(e.v, o.v, 0)
	return expReg{v: r}
}

func (e expReg) sub(o expReg) expReg {
	r, _ := alu.Sub(e.v, o.v)
	return expReg{v: r}
}

// less is signed comparison: N XOR V after a subtract.
func (e expReg) less(o expReg) bool {
	_, f := alu.Sub(e.v, o.v)
	return f.N != f.V
}

func (e expReg) int() int {
	return int(hostnum.ToInt64(e.v))
}

// field truncates the register to the 8-bit exponent field.
func (e expReg) field() bitvec.Vec {
	return e.v.Slice(0, isa.F32ExpBits)
}
