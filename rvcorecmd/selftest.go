package rvcorecmd

import (
	"context"
	"fmt"
	"math"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/fp32"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/mdu"
	"rvcore.org/rvcore/shift"
)

// selftestCmd cross-checks every unit against host arithmetic.  The
// oracle lives here, outside the circuit boundary; the units under test
// never see a native operator.
var selftestCmd = star.Command{
	Metadata: star.Metadata{
		Short: "cross-check the datapath against host arithmetic",
	},
	F: func(c star.Context) error {
		eg, ctx := errgroup.WithContext(c.Context)
		eg.Go(func() error { return selftestALU(ctx) })
		eg.Go(func() error { return selftestShift(ctx) })
		eg.Go(func() error { return selftestMDU(ctx) })
		eg.Go(func() error { return selftestFPU(ctx) })
		if err := eg.Wait(); err != nil {
			return err
		}
		c.Printf("selftest ok\n")
		return nil
	},
}

var sampleWords = []uint32{
	0, 1, 2, 3, 7, 13, 100, 0xFF, 0x8000, 0xDEADBEEF,
	0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0xFFFFFFF3,
}

func selftestALU(ctx context.Context) error {
	for _, x := range sampleWords {
		for _, y := range sampleWords {
			a := hostnum.FromUint64(uint64(x), isa.WordBits)
			b := hostnum.FromUint64(uint64(y), isa.WordBits)
			sum, _ := alu.Add(a, b, 0)
			if got, want := uint32(hostnum.ToUint64(sum)), x+y; got != want {
				return fmt.Errorf("add %#x+%#x: got %#x, want %#x", x, y, got, want)
			}
			diff, _ := alu.Sub(a, b)
			if got, want := uint32(hostnum.ToUint64(diff)), x-y; got != want {
				return fmt.Errorf("sub %#x-%#x: got %#x, want %#x", x, y, got, want)
			}
		}
	}
	logctx.Infof(ctx, "alu ok")
	return nil
}

func selftestShift(ctx context.Context) error {
	for _, x := range sampleWords {
		v := hostnum.FromUint64(uint64(x), isa.WordBits)
		for n := 0; n < isa.WordBits; n++ {
			if got, want := uint32(hostnum.ToUint64(shift.Sll(v, n))), x<<n; got != want {
				return fmt.Errorf("sll %#x by %d: got %#x, want %#x", x, n, got, want)
			}
			if got, want := uint32(hostnum.ToUint64(shift.Srl(v, n))), x>>n; got != want {
				return fmt.Errorf("srl %#x by %d: got %#x, want %#x", x, n, got, want)
			}
			if got, want := uint32(hostnum.ToUint64(shift.Sra(v, n))), uint32(int32(x)>>n); got != want {
				return fmt.Errorf("sra %#x by %d: got %#x, want %#x", x, n, got, want)
			}
		}
	}
	logctx.Infof(ctx, "shifter ok")
	return nil
}

func selftestMDU(ctx context.Context) error {
	for _, x := range sampleWords {
		for _, y := range sampleWords {
			a := hostnum.FromUint64(uint64(x), isa.WordBits)
			b := hostnum.FromUint64(uint64(y), isa.WordBits)
			if got, want := hostnum.ToUint64(mdu.Mul(a, b, false)), uint64(x)*uint64(y); got != want {
				return fmt.Errorf("mulu %#x*%#x: got %#x, want %#x", x, y, got, want)
			}
			if got, want := hostnum.ToInt64(mdu.Mul(a, b, true)), int64(int32(x))*int64(int32(y)); got != want {
				return fmt.Errorf("mul %#x*%#x: got %#x, want %#x", x, y, got, want)
			}
			if y == 0 {
				if _, _, err := mdu.Div(a, b, false); err != mdu.ErrDivideByZero {
					return fmt.Errorf("div %#x/0: got err %v", x, err)
				}
				continue
			}
			q, r, err := mdu.Div(a, b, false)
			if err != nil {
				return err
			}
			qv, rv := uint32(hostnum.ToUint64(q)), uint32(hostnum.ToUint64(r))
			if qv != x/y || rv != x%y {
				return fmt.Errorf("divu %#x/%#x: got q=%#x r=%#x", x, y, qv, rv)
			}
		}
	}
	logctx.Infof(ctx, "mdu ok")
	return nil
}

func selftestFPU(ctx context.Context) error {
	samples := []float32{
		0, float32(math.Copysign(0, -1)), 1, -1, 2, 3.75, -2.5, 0.15625,
		1e-40, -1e-40, 1e38, -1e38, 6.5e37,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	}
	for _, x := range samples {
		for _, y := range samples {
			a, b := hostnum.FromFloat32(x), hostnum.FromFloat32(y)
			if err := checkF32("fadd", fp32.Add(a, b), x+y); err != nil {
				return err
			}
			if err := checkF32("fsub", fp32.Sub(a, b), x-y); err != nil {
				return err
			}
			if err := checkF32("fmul", fp32.Mul(a, b), x*y); err != nil {
				return err
			}
		}
	}
	logctx.Infof(ctx, "fpu ok")
	return nil
}

func checkF32(op string, got bitvec.Vec, want float32) error {
	g := hostnum.ToFloat32(got)
	if math.IsNaN(float64(g)) && math.IsNaN(float64(want)) {
		return nil
	}
	if math.Float32bits(g) != math.Float32bits(want) {
		return fmt.Errorf("%s: got %v (%#x), want %v (%#x)",
			op, g, math.Float32bits(g), want, math.Float32bits(want))
	}
	return nil
}
