package alu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/internal/hostnum"
)

func TestAdd(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B  int64
		Out   int64
		Flags Flags
	}
	tcs := []testCase{
		{A: 1, B: 2, Out: 3, Flags: Flags{}},
		{A: 0, B: 0, Out: 0, Flags: Flags{Z: 1}},
		{A: -1, B: 1, Out: 0, Flags: Flags{Z: 1, C: 1}},
		{A: -1, B: -1, Out: -2, Flags: Flags{N: 1, C: 1}},
		{A: 0x7FFFFFFF, B: 1, Out: -0x80000000, Flags: Flags{N: 1, V: 1}},
		{A: -0x80000000, B: -0x80000000, Out: 0, Flags: Flags{Z: 1, C: 1, V: 1}},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromInt(tc.A, 32)
			b := hostnum.FromInt(tc.B, 32)
			out, f := Add(a, b, 0)
			require.Equal(t, tc.Out, hostnum.ToInt64(out))
			require.Equal(t, tc.Flags, f)
		})
	}
}

func TestAddCarryIn(t *testing.T) {
	t.Parallel()
	a := hostnum.FromInt(int64(5), 32)
	b := hostnum.FromInt(int64(6), 32)
	out, _ := Add(a, b, 1)
	require.Equal(t, int64(12), hostnum.ToInt64(out))
}

func TestSub(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B  int64
		Out   int64
		Flags Flags
	}
	tcs := []testCase{
		{A: 13, B: 13, Out: 0, Flags: Flags{Z: 1, C: 1}},
		{A: 5, B: 7, Out: -2, Flags: Flags{N: 1}},
		{A: 7, B: 5, Out: 2, Flags: Flags{C: 1}},
		{A: -0x80000000, B: 1, Out: 0x7FFFFFFF, Flags: Flags{C: 1, V: 1}},
		{A: 0, B: -0x80000000, Out: -0x80000000, Flags: Flags{N: 1, V: 1}},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromInt(tc.A, 32)
			b := hostnum.FromInt(tc.B, 32)
			out, f := Sub(a, b)
			require.Equal(t, tc.Out, hostnum.ToInt64(out))
			require.Equal(t, tc.Flags, f)
		})
	}
}

// Sub must behave exactly like Add of the inverted operand with carry 1.
func TestSubIsAddNotCarry(t *testing.T) {
	t.Parallel()
	for _, x := range []uint64{0, 1, 13, 0xFFFF, 0x80000000, 0xFFFFFFFF} {
		for _, y := range []uint64{0, 1, 3, 0x7FFFFFFF, 0xFFFFFFFF} {
			a := hostnum.FromUint64(x, 32)
			b := hostnum.FromUint64(y, 32)
			s1, f1 := Sub(a, b)
			s2, f2 := Add(a, Not(b), 1)
			require.True(t, s1.Equal(s2))
			require.Equal(t, f1, f2)
		}
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()
	require.Equal(t, int64(-5), hostnum.ToInt64(Neg(hostnum.FromInt(int64(5), 32))))
	require.Equal(t, int64(5), hostnum.ToInt64(Neg(hostnum.FromInt(int64(-5), 32))))
	// INT_MIN negates to itself at fixed width
	min := hostnum.FromInt(int64(-0x80000000), 32)
	require.True(t, Neg(min).Equal(min))
}

func TestLogic(t *testing.T) {
	t.Parallel()
	a := hostnum.FromUint64(0b1100, 4)
	b := hostnum.FromUint64(0b1010, 4)
	require.Equal(t, uint64(0b1000), hostnum.ToUint64(And(a, b)))
	require.Equal(t, uint64(0b1110), hostnum.ToUint64(Or(a, b)))
	require.Equal(t, uint64(0b0110), hostnum.ToUint64(Xor(a, b)))
	require.Equal(t, uint64(0b0011), hostnum.ToUint64(Not(a)))
}

func TestWidthMismatch(t *testing.T) {
	t.Parallel()
	a := bitvec.New(8)
	b := bitvec.New(4)
	require.Panics(t, func() { Add(a, b, 0) })
	require.Panics(t, func() { And(a, b) })
}
