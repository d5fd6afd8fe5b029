package fp32

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rvcore.org/rvcore/internal/hostnum"
)

func TestAddBits(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B uint64
		Out  uint64
	}
	tcs := []testCase{
		// 1.0 + 1.0 = 2.0
		{A: 0x3F800000, B: 0x3F800000, Out: 0x40000000},
		// 3.75 + 2.5 = 6.25
		{A: 0x40700000, B: 0x40200000, Out: 0x40C80000},
		// 0.1 + 0.2 = 0.3, inexact both ways
		{A: 0x3DCCCCCD, B: 0x3E4CCCCD, Out: 0x3E99999A},
		// 1.0 + 2^-24 ties to even, staying at 1.0
		{A: 0x3F800000, B: 0x33800000, Out: 0x3F800000},
		// (1.0 + 2^-23) + 2^-24 ties upward
		{A: 0x3F800001, B: 0x33800000, Out: 0x3F800002},
		// 1.0 - 2^-25 rounds back to 1.0
		{A: 0x3F800000, B: 0xB3000000, Out: 0x3F800000},
		// exact cancellation yields +0
		{A: 0x40B00000, B: 0xC0B00000, Out: 0x00000000},
		// catastrophic cancellation, 7 - 6.99999
		{A: 0x40E00000, B: 0xC0DFFFEB, Out: 0x37280000},
		// smallest normal minus half of it goes subnormal
		{A: 0x00800000, B: 0x80400000, Out: 0x00400000},
		// subnormal + subnormal stays exact
		{A: 0x00000003, B: 0x00000005, Out: 0x00000008},
		// overflow saturates to infinity
		{A: 0x7F7FFFFF, B: 0x7F7FFFFF, Out: 0x7F800000},
		// infinity dominates finite values
		{A: 0x7F800000, B: 0x3F800000, Out: 0x7F800000},
		{A: 0xFF800000, B: 0x7F7FFFFF, Out: 0xFF800000},
		// opposing infinities are invalid
		{A: 0x7F800000, B: 0xFF800000, Out: 0x7FC00000},
		// NaN propagates as the canonical quiet NaN
		{A: 0x7F800001, B: 0x3F800000, Out: 0x7FC00000},
		{A: 0x3F800000, B: 0xFFC00000, Out: 0x7FC00000},
		// signed zeros
		{A: 0x00000000, B: 0x80000000, Out: 0x00000000},
		{A: 0x80000000, B: 0x80000000, Out: 0x80000000},
		{A: 0x80000000, B: 0x3F800000, Out: 0x3F800000},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromUint64(tc.A, 32)
			b := hostnum.FromUint64(tc.B, 32)
			out := Add(a, b)
			require.Equal(t, tc.Out, hostnum.ToUint64(out),
				"%v + %v: got %v", hostnum.ToFloat32(a), hostnum.ToFloat32(b), hostnum.ToFloat32(out))
		})
	}
}

func TestSubBits(t *testing.T) {
	t.Parallel()
	a := hostnum.FromUint64(0x40C80000, 32) // 6.25
	b := hostnum.FromUint64(0x40200000, 32) // 2.5
	require.Equal(t, uint64(0x40700000), hostnum.ToUint64(Sub(a, b)))

	// a - b == a + (-b) even for zeros
	z := hostnum.FromUint64(0x00000000, 32)
	require.Equal(t, uint64(0x00000000), hostnum.ToUint64(Sub(z, z)))
	nz := hostnum.FromUint64(0x80000000, 32)
	require.Equal(t, uint64(0x00000000), hostnum.ToUint64(Sub(nz, nz)))
}

func TestMulBits(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B uint64
		Out  uint64
	}
	tcs := []testCase{
		// 2.0 * 3.0 = 6.0
		{A: 0x40000000, B: 0x40400000, Out: 0x40C00000},
		// 3.75 * 2.5 = 9.375
		{A: 0x40700000, B: 0x40200000, Out: 0x41160000},
		// 0.1 * 0.2, doubly inexact
		{A: 0x3DCCCCCD, B: 0x3E4CCCCD, Out: 0x3CA3D70B},
		// 1e-20 * 1e-20 lands deep in the subnormals
		{A: 0x1E3CE508, B: 0x1E3CE508, Out: 0x000116C2},
		// smallest subnormal halves to zero, ties to even
		{A: 0x00000001, B: 0x3F000000, Out: 0x00000000},
		// and doubles exactly
		{A: 0x00000001, B: 0x40000000, Out: 0x00000002},
		// subnormal times normal, 1.5 * 3ulp
		{A: 0x3FC00000, B: 0x00000003, Out: 0x00000004},
		// overflow saturates
		{A: 0x7149F2CA, B: 0x7149F2CA, Out: 0x7F800000},
		// sign handling
		{A: 0xC0000000, B: 0x40400000, Out: 0xC0C00000},
		{A: 0xC0000000, B: 0xC0400000, Out: 0x40C00000},
		// zero times finite keeps the product sign
		{A: 0x00000000, B: 0xC0400000, Out: 0x80000000},
		{A: 0x80000000, B: 0xC0400000, Out: 0x00000000},
		// infinity times zero is invalid
		{A: 0x7F800000, B: 0x00000000, Out: 0x7FC00000},
		{A: 0x80000000, B: 0xFF800000, Out: 0x7FC00000},
		// infinity times finite keeps the sign product
		{A: 0x7F800000, B: 0xC0000000, Out: 0xFF800000},
		{A: 0xFF800000, B: 0xFF800000, Out: 0x7F800000},
		// NaN propagates
		{A: 0x7FC00000, B: 0x40000000, Out: 0x7FC00000},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromUint64(tc.A, 32)
			b := hostnum.FromUint64(tc.B, 32)
			out := Mul(a, b)
			require.Equal(t, tc.Out, hostnum.ToUint64(out),
				"%v * %v: got %v", hostnum.ToFloat32(a), hostnum.ToFloat32(b), hostnum.ToFloat32(out))
		})
	}
}

func TestAddCommutes(t *testing.T) {
	t.Parallel()
	patterns := []uint64{
		0x3F800000, 0x33800000, 0x7F7FFFFF, 0x00000001, 0x80000000, 0xC0200000,
	}
	for _, x := range patterns {
		for _, y := range patterns {
			a := hostnum.FromUint64(x, 32)
			b := hostnum.FromUint64(y, 32)
			require.True(t, Add(a, b).Equal(Add(b, a)), "%#x %#x", x, y)
			require.True(t, Mul(a, b).Equal(Mul(b, a)), "%#x %#x", x, y)
		}
	}
}
