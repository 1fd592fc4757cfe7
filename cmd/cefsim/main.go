package main

import (
	"os"

	"github.com/named-data/cefsim/cmd"
	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/executor"
	"github.com/named-data/cefsim/tools"
)

// Version of cefsim, set at link time.
var Version string

// BuildTime of cefsim, set at link time.
var BuildTime string

func main() {
	core.Version = Version
	core.BuildTime = BuildTime

	tree := cmd.CmdTree{
		Name: "cefsim",
		Help: "Cefore scenario builder for ns-3/DCE",
		Sub: []*cmd.CmdTree{{
			Name: "gen",
			Help: "Prepare config bundles, FIBs and cache markers for every node",
			Fun:  executor.Main,
		}, {
			Name: "plan",
			Help: "Print the node layout and application launch schedule",
			Fun:  tools.RunPlan,
		}, {
			// tools separator
		}, {
			Name: "fib",
			Help: "Print the FIB of a prepared node",
			Fun:  tools.RunFibDump,
		}, {
			Name: "verify",
			Help: "Check prepared nodes against the templates",
			Fun:  tools.RunVerify,
		}},
	}

	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
