package rvcorecmd

import (
	"go.brendoncarroll.net/star"

	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/fp32"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/runlog"
)

func fpuCmd(op isa.Op) star.Command {
	return star.Command{
		Metadata: star.Metadata{
			Short: "run " + op.String() + " through the FPU",
			Tags:  []string{"fpu"},
		},
		Flags: []star.IParam{DBParam},
		Pos:   []star.IParam{aParam, bParam},
		F: func(c star.Context) error {
			a, err := parseFloatVec(aParam.Load(c))
			if err != nil {
				return err
			}
			b, err := parseFloatVec(bParam.Load(c))
			if err != nil {
				return err
			}
			var out bitvec.Vec
			switch op {
			case isa.OpFAdd:
				out = fp32.Add(a, b)
			case isa.OpFSub:
				out = fp32.Sub(a, b)
			case isa.OpFMul:
				out = fp32.Mul(a, b)
			}
			c.Printf("%s (%v)\n", hostnum.FormatHex(out), hostnum.ToFloat32(out))
			log := runlog.New(DBParam.Load(c))
			_, err = log.Record(c.Context, runlog.Run{
				Op:     op.String(),
				Width:  isa.F32Bits,
				A:      hostnum.FormatHex(a),
				B:      hostnum.FormatHex(b),
				Result: hostnum.FormatHex(out),
			})
			return err
		},
	}
}
