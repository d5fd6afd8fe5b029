package rvcorecmd

import (
	"fmt"

	"go.brendoncarroll.net/star"

	"rvcore.org/rvcore/alu"
	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/mdu"
	"rvcore.org/rvcore/runlog"
	"rvcore.org/rvcore/shift"
)

func aluCmd(op isa.Op) star.Command {
	return star.Command{
		Metadata: star.Metadata{
			Short: "run " + op.String() + " through the ALU",
			Tags:  []string{"alu"},
		},
		Flags: []star.IParam{DBParam, widthParam},
		Pos:   []star.IParam{aParam, bParam},
		F: func(c star.Context) error {
			w := widthParam.Load(c)
			a, err := parseVec(aParam.Load(c), w)
			if err != nil {
				return err
			}
			b, err := parseVec(bParam.Load(c), w)
			if err != nil {
				return err
			}
			var out bitvec.Vec
			var flags string
			switch op {
			case isa.OpAdd:
				var f alu.Flags
				out, f = alu.Add(a, b, 0)
				flags = formatFlags(f)
			case isa.OpSub:
				var f alu.Flags
				out, f = alu.Sub(a, b)
				flags = formatFlags(f)
			case isa.OpAnd:
				out = alu.And(a, b)
			case isa.OpOr:
				out = alu.Or(a, b)
			case isa.OpXor:
				out = alu.Xor(a, b)
			}
			c.Printf("%s\n", hostnum.FormatHex(out))
			if flags != "" {
				c.Printf("flags: %s\n", flags)
			}
			log := runlog.New(DBParam.Load(c))
			_, err = log.Record(c.Context, runlog.Run{
				Op:     op.String(),
				Width:  w,
				A:      hostnum.FormatHex(a),
				B:      hostnum.FormatHex(b),
				Result: hostnum.FormatHex(out),
				Flags:  flags,
			})
			return err
		},
	}
}

func shiftCmd(op isa.Op) star.Command {
	return star.Command{
		Metadata: star.Metadata{
			Short: "run " + op.String() + " through the shifter",
			Tags:  []string{"shifter"},
		},
		Flags: []star.IParam{DBParam, widthParam},
		Pos:   []star.IParam{aParam, shamtParam},
		F: func(c star.Context) error {
			w := widthParam.Load(c)
			v, err := parseVec(aParam.Load(c), w)
			if err != nil {
				return err
			}
			n := shamtParam.Load(c)
			if n < 0 {
				return fmt.Errorf("shift amount %d is negative", n)
			}
			var out bitvec.Vec
			switch op {
			case isa.OpSll:
				out = shift.Sll(v, n)
			case isa.OpSrl:
				out = shift.Srl(v, n)
			case isa.OpSra:
				out = shift.Sra(v, n)
			}
			c.Printf("%s\n", hostnum.FormatHex(out))
			log := runlog.New(DBParam.Load(c))
			_, err = log.Record(c.Context, runlog.Run{
				Op:     op.String(),
				Width:  w,
				A:      hostnum.FormatHex(v),
				B:      fmt.Sprint(n),
				Result: hostnum.FormatHex(out),
			})
			return err
		},
	}
}

var mulCmd = star.Command{
	Metadata: star.Metadata{
		Short: "run the shift-add multiplier",
		Tags:  []string{"mdu"},
	},
	Flags: []star.IParam{DBParam, widthParam, signedParam},
	Pos:   []star.IParam{aParam, bParam},
	F: func(c star.Context) error {
		w := widthParam.Load(c)
		signed := signedParam.Load(c)
		a, err := parseVec(aParam.Load(c), w)
		if err != nil {
			return err
		}
		b, err := parseVec(bParam.Load(c), w)
		if err != nil {
			return err
		}
		var steps []runlog.Step
		for s := range mdu.MulSteps(a, b, signed) {
			steps = append(steps, runlog.Step{
				Index: s.Index,
				Reg:   hostnum.FormatHex(s.Acc),
				QBit:  s.Bit,
			})
		}
		prod := mdu.Mul(a, b, signed)
		lo, hi := prod.Slice(0, w), prod.Slice(w, prod.Width())
		c.Printf("lo: %s\n", hostnum.FormatHex(lo))
		c.Printf("hi: %s\n", hostnum.FormatHex(hi))
		log := runlog.New(DBParam.Load(c))
		_, err = log.Record(c.Context, runlog.Run{
			Op:      isa.OpMul.String(),
			Width:   w,
			Signed:  signed,
			A:       hostnum.FormatHex(a),
			B:       hostnum.FormatHex(b),
			Result:  hostnum.FormatHex(lo),
			Result2: hostnum.FormatHex(hi),
			Steps:   steps,
		})
		return err
	},
}

var divCmd = star.Command{
	Metadata: star.Metadata{
		Short: "run the restoring divider, printing each iteration",
		Tags:  []string{"mdu"},
	},
	Flags: []star.IParam{DBParam, widthParam, signedParam},
	Pos:   []star.IParam{aParam, bParam},
	F: func(c star.Context) error {
		w := widthParam.Load(c)
		signed := signedParam.Load(c)
		a, err := parseVec(aParam.Load(c), w)
		if err != nil {
			return err
		}
		b, err := parseVec(bParam.Load(c), w)
		if err != nil {
			return err
		}
		seq, err := mdu.DivSteps(a, b, signed)
		if err != nil {
			return err
		}
		var steps []runlog.Step
		for s := range seq {
			c.Printf("step %2d: R=%s q=%d\n", s.Index, hostnum.FormatHex(s.R), s.QBit)
			steps = append(steps, runlog.Step{
				Index: s.Index,
				Reg:   hostnum.FormatHex(s.R),
				QBit:  s.QBit,
			})
		}
		q, r, err := mdu.Div(a, b, signed)
		if err != nil {
			return err
		}
		c.Printf("quotient:  %s\n", hostnum.FormatHex(q))
		c.Printf("remainder: %s\n", hostnum.FormatHex(r))
		log := runlog.New(DBParam.Load(c))
		_, err = log.Record(c.Context, runlog.Run{
			Op:      isa.OpDiv.String(),
			Width:   w,
			Signed:  signed,
			A:       hostnum.FormatHex(a),
			B:       hostnum.FormatHex(b),
			Result:  hostnum.FormatHex(q),
			Result2: hostnum.FormatHex(r),
			Steps:   steps,
		})
		return err
	},
}

func formatFlags(f alu.Flags) string {
	return fmt.Sprintf("N=%d Z=%d C=%d V=%d", f.N, f.Z, f.C, f.V)
}
