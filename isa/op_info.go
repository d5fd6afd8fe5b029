package isa

// Unit names the functional unit an operation executes on.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitALU
	UnitShifter
	UnitMDU
	UnitFPU
)

// Info is information about operations.
type Info struct {
	Name string
	Unit Unit
	// TakesSigned reports whether the operation distinguishes a signed
	// and an unsigned mode.
	TakesSigned bool
	// TakesShamt reports whether the second operand is a shift amount
	// rather than a bit vector.
	TakesShamt bool
}

func (o Op) Info() Info {
	return infos[o]
}

var infos = func() (ret [1 << 8]Info) {
	m := map[Op]Info{
		OpAdd: {Name: "add", Unit: UnitALU},
		OpSub: {Name: "sub", Unit: UnitALU},
		OpAnd: {Name: "and", Unit: UnitALU},
		OpOr:  {Name: "or", Unit: UnitALU},
		OpXor: {Name: "xor", Unit: UnitALU},

		OpSll: {Name: "sll", Unit: UnitShifter, TakesShamt: true},
		OpSrl: {Name: "srl", Unit: UnitShifter, TakesShamt: true},
		OpSra: {Name: "sra", Unit: UnitShifter, TakesShamt: true},

		OpMul: {Name: "mul", Unit: UnitMDU, TakesSigned: true},
		OpDiv: {Name: "div", Unit: UnitMDU, TakesSigned: true},

		OpFAdd: {Name: "fadd", Unit: UnitFPU},
		OpFSub: {Name: "fsub", Unit: UnitFPU},
		OpFMul: {Name: "fmul", Unit: UnitFPU},
	}
	for op, info := range m {
		ret[op] = info
	}
	return ret
}()

// OpByName returns the operation with the given name.
func OpByName(name string) (Op, bool) {
	for op, info := range infos {
		if info.Name == name && info.Name != "" {
			return Op(op), true
		}
	}
	return Unknown, false
}

// AllOps returns every defined operation in numeric order.
func AllOps() (ret []Op) {
	for op, info := range infos {
		if info.Name != "" {
			ret = append(ret, Op(op))
		}
	}
	return ret
}
