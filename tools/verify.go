package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/named-data/cefsim/cefore"
	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/executor"
	"github.com/named-data/cefsim/scenario"
)

type BundleVerifier struct {
	args []string
	opts executor.Options
}

func RunVerify(args []string) {
	(&BundleVerifier{args: args}).run()
}

func (bv *BundleVerifier) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", bv.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Checks that every prepared node holds an unmodified copy of the templates.\n")
	fmt.Fprintf(os.Stderr, "The FIB, and cefnetd.conf on caching access points, are not compared.\n\n")
}

func (bv *BundleVerifier) run() {
	flagset := flag.NewFlagSet("verify", flag.ExitOnError)
	flagset.Usage = func() {
		bv.usage()
		flagset.PrintDefaults()
	}
	bv.opts.Register(flagset)
	flagset.Parse(bv.args[1:])

	config, err := bv.opts.Load(flagset)
	if err != nil {
		core.LogFatal("Verify", "Unable to load configuration: ", err)
	}
	if config.Apps.Mode != core.ModeCefore {
		core.LogInfo("Verify", "Mode ", config.Apps.Mode, " has no Cefore config to verify")
		return
	}
	b, err := scenario.NewBuilder(config)
	if err != nil {
		core.LogFatal("Verify", err)
	}

	failed := 0
	for _, node := range b.Topology().CeforeNodes() {
		result, err := cefore.VerifyBundle(b.Layout(), node.ID, b.GeneratedFiles(node))
		if err != nil {
			core.LogFatal("Verify", err)
		}
		if result.OK() {
			fmt.Printf("node-%d (%s): ok, %d file(s)\n", node.ID, node.Role, len(result.Matched))
			continue
		}
		failed++
		fmt.Printf("node-%d (%s): modified %v, missing %v\n", node.ID, node.Role, result.Modified, result.Missing)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
