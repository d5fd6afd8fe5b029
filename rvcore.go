// package rvcore is a bit-level simulator of a RISC-V style numeric
// execution core.  Every result below the host boundary is produced by
// explicit bit manipulation: propagated carries, shift micro-steps,
// restoring-division iterations, and floating-point alignment and
// rounding.  Host arithmetic appears only at the conversion boundary
// and in test oracles.
package rvcore

import (
	"lukechampine.com/blake3"

	"rvcore.org/rvcore/isa"
)

const (
	// WordBits is the operand width of the datapath.
	WordBits = isa.WordBits

	// DoubleBits is the width of a full multiply product.
	DoubleBits = isa.DoubleBits
)

// ID identifies a recorded datapath run by content.
type ID [32]byte

// Hash calculates the content ID of x.
func Hash(x []byte) (ret ID) {
	h := blake3.New(32, nil)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}
