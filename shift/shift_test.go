package shift

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rvcore.org/rvcore/internal/hostnum"
)

func TestShift(t *testing.T) {
	t.Parallel()
	type testCase struct {
		In  uint64
		N   int
		Sll uint64
		Srl uint64
		Sra uint64
	}
	tcs := []testCase{
		{In: 0xF000000A, N: 0, Sll: 0xF000000A, Srl: 0xF000000A, Sra: 0xF000000A},
		{In: 0xF000000A, N: 4, Sll: 0x000000A0, Srl: 0x0F000000, Sra: 0xFF000000},
		{In: 0xF000000A, N: 31, Sll: 0x00000000, Srl: 0x00000001, Sra: 0xFFFFFFFF},
		{In: 0x0000000A, N: 1, Sll: 0x00000014, Srl: 0x00000005, Sra: 0x00000005},
		{In: 0x80000000, N: 1, Sll: 0x00000000, Srl: 0x40000000, Sra: 0xC0000000},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			v := hostnum.FromUint64(tc.In, 32)
			require.Equal(t, tc.Sll, hostnum.ToUint64(Sll(v, tc.N)), "sll")
			require.Equal(t, tc.Srl, hostnum.ToUint64(Srl(v, tc.N)), "srl")
			require.Equal(t, tc.Sra, hostnum.ToUint64(Sra(v, tc.N)), "sra")
		})
	}
}

// Shifting by the width or more drains every input bit.
func TestShiftOut(t *testing.T) {
	t.Parallel()
	v := hostnum.FromUint64(0xF000000A, 32)
	for _, n := range []int{32, 33, 100} {
		require.True(t, Sll(v, n).IsZero())
		require.True(t, Srl(v, n).IsZero())
		require.Equal(t, uint64(0xFFFFFFFF), hostnum.ToUint64(Sra(v, n)))
	}
	pos := hostnum.FromUint64(0x7000000A, 32)
	require.True(t, Sra(pos, 32).IsZero())
}

func TestNegativeAmount(t *testing.T) {
	t.Parallel()
	v := hostnum.FromUint64(1, 32)
	require.PanicsWithError(t, AmountError{Amount: -1}.Error(), func() { Sll(v, -1) })
	require.Panics(t, func() { Srl(v, -1) })
	require.Panics(t, func() { Sra(v, -1) })
}

// A left shift followed by a logical right shift of the same amount
// recovers the low bits exactly.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, x := range []uint64{0, 1, 0xA5, 0xDEADBEEF} {
		v := hostnum.FromUint64(x, 32)
		for n := 0; n < 8; n++ {
			back := Srl(Sll(v, n), n)
			mask := uint64(0xFFFFFFFF) >> n
			require.Equal(t, x&mask, hostnum.ToUint64(back))
		}
	}
}
