// package rvcorecmd implements the rvcore command line tool.
package rvcorecmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"rvcore.org/rvcore/bitvec"
	"rvcore.org/rvcore/internal/hostnum"
	"rvcore.org/rvcore/isa"
	"rvcore.org/rvcore/runlog"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "rvcore bit-level datapath simulator",
}, map[star.Symbol]star.Command{
	// ALU
	"add": aluCmd(isa.OpAdd),
	"sub": aluCmd(isa.OpSub),
	"and": aluCmd(isa.OpAnd),
	"or":  aluCmd(isa.OpOr),
	"xor": aluCmd(isa.OpXor),

	// shifter
	"sll": shiftCmd(isa.OpSll),
	"srl": shiftCmd(isa.OpSrl),
	"sra": shiftCmd(isa.OpSra),

	// MDU
	"mul": mulCmd,
	"div": divCmd,

	// FPU
	"fadd": fpuCmd(isa.OpFAdd),
	"fsub": fpuCmd(isa.OpFSub),
	"fmul": fpuCmd(isa.OpFMul),

	"runs":     runsCmd,
	"status":   statusCmd,
	"selftest": selftestCmd,
})

var statusCmd = star.Command{
	Metadata: star.Metadata{
		Short: "check the run database",
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		c.Printf("STATUS\n")
		db := DBParam.Load(c)
		if err := db.Ping(); err != nil {
			return err
		}
		return db.Close()
	},
}

var DBParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr(":memory:"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := runlog.OpenDB(x)
		if err != nil {
			return nil, err
		}
		if err := runlog.SetupDB(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	},
}

var widthParam = star.Param[int]{
	Name:    "width",
	Default: star.Ptr("32"),
	Parse:   strconv.Atoi,
}

var signedParam = star.Param[bool]{
	Name:    "signed",
	Default: star.Ptr("false"),
	Parse:   strconv.ParseBool,
}

var aParam = star.Param[string]{Name: "a", Parse: star.ParseString}
var bParam = star.Param[string]{Name: "b", Parse: star.ParseString}

var shamtParam = star.Param[int]{
	Name:  "shamt",
	Parse: strconv.Atoi,
}

// parseVec accepts a 0x-prefixed bit pattern or a signed decimal.
func parseVec(s string, w int) (bitvec.Vec, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hostnum.ParseHex(s, w)
	}
	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return bitvec.Vec{}, fmt.Errorf("operand %q is neither hex nor decimal: %w", s, err)
	}
	return hostnum.FromInt(x, w), nil
}

// parseFloatVec accepts a 0x-prefixed 32-bit pattern or a decimal
// float.
func parseFloatVec(s string) (bitvec.Vec, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hostnum.ParseHex(s, isa.F32Bits)
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return bitvec.Vec{}, fmt.Errorf("operand %q is neither hex nor a float: %w", s, err)
	}
	return hostnum.FromFloat32(float32(f)), nil
}
