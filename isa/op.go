// package isa defines the operation set and the field layout constants of
// the simulated datapath.
package isa

// Op is a datapath operation.
type Op uint8

const (
	Unknown Op = iota

	// ALU
	OpAdd
	OpSub
	OpAnd
	OpOr
	OpXor

	// Shifter
	OpSll
	OpSrl
	OpSra

	// MDU
	OpMul
	OpDiv

	// FPU
	OpFAdd
	OpFSub
	OpFMul
)

func (o Op) String() string {
	return infos[o].Name
}
