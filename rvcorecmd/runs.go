package rvcorecmd

import (
	"go.brendoncarroll.net/star"

	"rvcore.org/rvcore/runlog"
)

var runsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "list recorded runs",
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		log := runlog.New(DBParam.Load(c))
		runs, err := log.List(c.Context)
		if err != nil {
			return err
		}
		c.Printf("OP\tWIDTH\tSIGNED\tA\tB\tRESULT\tRESULT2\n")
		for _, r := range runs {
			c.Printf("%s\t%d\t%v\t%s\t%s\t%s\t%s\n",
				r.Op, r.Width, r.Signed, r.A, r.B, r.Result, r.Result2)
		}
		return nil
	},
}
