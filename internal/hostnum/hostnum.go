// package hostnum converts between host numerics and bit vectors.
//
// This is the system boundary: test setup, the float32 codec edge, trace
// formatting, and the CLI go through here.  The datapath packages never
// do; they derive every result bit by bit.
package hostnum

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/isa"
)

// FromUint64 returns the low w bits of x.
func FromUint64(x uint64, w int) bitvec.Vec {
	v := bitvec.New(w)
	for i := 0; i < w && i < 64; i++ {
		v.Put(i, bitvec.Bit(x>>i)&1)
	}
	return v
}

// FromInt returns the two's-complement encoding of x truncated to w bits.
func FromInt[T constraints.Integer](x T, w int) bitvec.Vec {
	return FromUint64(uint64(int64(x)), w)
}

// ToUint64 reinterprets v as an unsigned integer.
func ToUint64(v bitvec.Vec) uint64 {
	if v.Width() > 64 {
		panic(bitvec.WidthError{Got: v.Width(), Want: 64})
	}
	var x uint64
	for i := 0; i < v.Width(); i++ {
		x |= uint64(v.Get(i)) << i
	}
	return x
}

// ToInt64 reinterprets v as a two's-complement signed integer.
func ToInt64(v bitvec.Vec) int64 {
	x := ToUint64(v)
	w := v.Width()
	if w < 64 && v.Sign() == 1 {
		x |= ^uint64(0) << w
	}
	return int64(x)
}

// FromFloat32 returns the 32-bit pattern of f.
func FromFloat32(f float32) bitvec.Vec {
	return FromUint64(uint64(math.Float32bits(f)), isa.F32Bits)
}

// ToFloat32 reinterprets a 32-bit vector as a float.
func ToFloat32(v bitvec.Vec) float32 {
	bitvec.MustWidth(v, isa.F32Bits)
	return math.Float32frombits(uint32(ToUint64(v)))
}

// FormatHex renders v as 0x-prefixed hex, MSB first.  Widths that are
// not a multiple of 4 are zero-padded at the top.
func FormatHex(v bitvec.Vec) string {
	const digits = "0123456789ABCDEF"
	w := v.Width()
	n := (w + 3) / 4
	buf := make([]byte, n)
	for d := 0; d < n; d++ {
		var nib byte
		for j := 3; j >= 0; j-- {
			i := d*4 + j
			nib <<= 1
			if i < w && v.Get(i) == 1 {
				nib |= 1
			}
		}
		buf[n-1-d] = digits[nib]
	}
	return "0x" + string(buf)
}

// ParseHex parses a 0x-prefixed or bare hex string into a vector of
// width w.
func ParseHex(s string, w int) (bitvec.Vec, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if t == "" {
		return bitvec.Vec{}, fmt.Errorf("hostnum: empty hex string %q", s)
	}
	v := bitvec.New(w)
	i := 0
	for d := len(t) - 1; d >= 0; d-- {
		nib, err := nibble(t[d])
		if err != nil {
			return bitvec.Vec{}, err
		}
		for j := 0; j < 4; j++ {
			if i < w {
				v.Put(i, bitvec.Bit(nib>>j)&1)
			} else if bitvec.Bit(nib>>j)&1 == 1 {
				return bitvec.Vec{}, fmt.Errorf("hostnum: %q does not fit in %d bits", s, w)
			}
			i++
		}
	}
	return v, nil
}

func nibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("hostnum: bad hex digit %q", c)
}
