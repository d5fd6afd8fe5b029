// package bitvec provides the fixed-width bit vector that every datapath
// component consumes and produces.
//
// Bit 0 is the least significant bit.  Vectors never resize implicitly;
// width changes go through SignExtend, ZeroExtend, Slice, or Concat, all
// of which construct a new vector.  There are no arithmetic methods here,
// only storage and structural bit copying.
package bitvec

// Bit is a single bit, 0 or 1.
type Bit = uint8

// Vec is a fixed-width vector of bits.
type Vec struct {
	d []Bit
}

// New returns an all-zero vector of width w.
func New(w int) Vec {
	if w < 0 {
		panic(OutOfRangeError{Index: w, Width: w})
	}
	return Vec{d: make([]Bit, w)}
}

// Ones returns an all-ones vector of width w.
func Ones(w int) Vec {
	v := New(w)
	for i := range v.d {
		v.d[i] = 1
	}
	return v
}

// FromBits constructs a vector from a literal bit pattern, least
// significant bit first.
func FromBits(bs ...Bit) Vec {
	v := New(len(bs))
	for i, b := range bs {
		v.d[i] = b & 1
	}
	return v
}

// Width returns the number of bits in v.
func (v Vec) Width() int {
	return len(v.d)
}

// Get returns bit i.
func (v Vec) Get(i int) Bit {
	if i < 0 || i >= len(v.d) {
		panic(OutOfRangeError{Index: i, Width: len(v.d)})
	}
	return v.d[i]
}

// Put sets bit i.  The backing storage is shared with the original
// vector; components mutate only vectors they constructed themselves.
func (v Vec) Put(i int, x Bit) {
	if i < 0 || i >= len(v.d) {
		panic(OutOfRangeError{Index: i, Width: len(v.d)})
	}
	v.d[i] = x & 1
}

// Clone returns a copy of v with its own storage.
func (v Vec) Clone() Vec {
	out := New(len(v.d))
	copy(out.d, v.d)
	return out
}

// IsZero reports whether every bit of v is 0.
func (v Vec) IsZero() bool {
	for _, b := range v.d {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether v and u have the same width and bits.
func (v Vec) Equal(u Vec) bool {
	if len(v.d) != len(u.d) {
		return false
	}
	for i := range v.d {
		if v.d[i] != u.d[i] {
			return false
		}
	}
	return true
}

// Sign returns the most significant bit.
func (v Vec) Sign() Bit {
	return v.Get(len(v.d) - 1)
}

// ZeroExtend returns v widened to w bits with zeros above the old MSB.
func (v Vec) ZeroExtend(w int) Vec {
	if w < len(v.d) {
		panic(WidthError{Got: w, Want: len(v.d)})
	}
	out := New(w)
	copy(out.d, v.d)
	return out
}

// SignExtend returns v widened to w bits with the sign bit replicated
// above the old MSB.
func (v Vec) SignExtend(w int) Vec {
	if w < len(v.d) {
		panic(WidthError{Got: w, Want: len(v.d)})
	}
	out := New(w)
	copy(out.d, v.d)
	s := v.Sign()
	for i := len(v.d); i < w; i++ {
		out.d[i] = s
	}
	return out
}

// Slice returns a copy of bits [beg, end).
func (v Vec) Slice(beg, end int) Vec {
	if beg < 0 || end > len(v.d) || beg > end {
		panic(OutOfRangeError{Index: end, Width: len(v.d)})
	}
	out := New(end - beg)
	copy(out.d, v.d[beg:end])
	return out
}

// Concat returns hi appended above lo: bit 0 of the result is bit 0 of
// lo, and the bits of hi sit above the width of lo.
func Concat(lo, hi Vec) Vec {
	out := New(len(lo.d) + len(hi.d))
	copy(out.d, lo.d)
	copy(out.d[len(lo.d):], hi.d)
	return out
}

// String renders v MSB first, grouped in fours.
func (v Vec) String() string {
	buf := make([]byte, 0, len(v.d)+len(v.d)/4)
	for i := len(v.d) - 1; i >= 0; i-- {
		buf = append(buf, '0'+v.d[i])
		if i != 0 && i%4 == 0 {
			buf = append(buf, '_')
		}
	}
	return string(buf)
}
