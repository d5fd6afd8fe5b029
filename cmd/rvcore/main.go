package main

import (
	"go.brendoncarroll.net/star"

	"rvcore.org/rvcore/rvcorecmd"
)

func main() {
	star.Main(rvcorecmd.Root())
}
