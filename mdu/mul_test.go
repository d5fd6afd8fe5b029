package mdu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rvcore.org/rvcore/internal/hostnum"
)

func TestMulUnsigned(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B uint64
	}
	tcs := []testCase{
		{A: 0, B: 0},
		{A: 5, B: 7},
		{A: 1, B: 0xFFFFFFFF},
		{A: 0xFFFFFFFF, B: 0xFFFFFFFF},
		{A: 0x10000, B: 0x10000},
		{A: 12345678, B: 87654321},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromUint64(tc.A, 32)
			b := hostnum.FromUint64(tc.B, 32)
			prod := Mul(a, b, false)
			require.Equal(t, 64, prod.Width())
			require.Equal(t, tc.A*tc.B, hostnum.ToUint64(prod))
		})
	}
}

func TestMulSigned(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B int64
	}
	tcs := []testCase{
		{A: 5, B: 7},
		{A: -5, B: 7},
		{A: 5, B: -7},
		{A: -5, B: -7},
		{A: -1, B: -1},
		{A: -0x80000000, B: -0x80000000},
		{A: 12345678, B: -87654321},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			a := hostnum.FromInt(tc.A, 32)
			b := hostnum.FromInt(tc.B, 32)
			prod := Mul(a, b, true)
			require.Equal(t, tc.A*tc.B, hostnum.ToInt64(prod))
		})
	}
}

func TestMulHalves(t *testing.T) {
	t.Parallel()
	a := hostnum.FromInt(int64(12345678), 32)
	b := hostnum.FromInt(int64(-87654321), 32)
	prod := Mul(a, b, true)
	require.Equal(t, uint64(0xD91D0712), hostnum.ToUint64(prod.Slice(0, 32)))
	require.Equal(t, uint64(0xFFFC27C9), hostnum.ToUint64(prod.Slice(32, 64)))
}

func TestMulSteps(t *testing.T) {
	t.Parallel()
	a := hostnum.FromUint64(5, 4)
	b := hostnum.FromUint64(7, 4)

	var steps []MulStep
	for s := range MulSteps(a, b, false) {
		steps = append(steps, s)
	}
	require.Len(t, steps, 8)
	for i, s := range steps {
		require.Equal(t, i, s.Index)
	}
	// multiplier 7 = 0b0111 contributes on its three low bits
	require.Equal(t, uint64(5), hostnum.ToUint64(steps[0].Acc))
	require.Equal(t, uint64(15), hostnum.ToUint64(steps[1].Acc))
	require.Equal(t, uint64(35), hostnum.ToUint64(steps[2].Acc))
	require.Equal(t, uint64(35), hostnum.ToUint64(steps[7].Acc))

	// the sequence restarts cleanly
	var again int
	for range MulSteps(a, b, false) {
		again++
	}
	require.Equal(t, 8, again)
}

func TestMulStepsEarlyStop(t *testing.T) {
	t.Parallel()
	a := hostnum.FromUint64(5, 4)
	b := hostnum.FromUint64(7, 4)
	var n int
	for range MulSteps(a, b, false) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}
