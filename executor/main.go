package executor

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/named-data/cefsim/core"
)

// Main runs the gen command: prepare every node's Cefore files.
func Main(args []string) {
	opts := &Options{}

	flagset := flag.NewFlagSet("gen", flag.ExitOnError)
	flagset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Copies the Cefore config bundle to files-<nodeId>/usr/local/cefore for every\n")
		fmt.Fprintf(os.Stderr, "access point and station, writes their FIBs and enables AP caching.\n\n")
		flagset.PrintDefaults()
	}

	var printVersion bool
	flagset.BoolVar(&printVersion, "version", false, "Print version and exit")
	opts.Register(flagset)
	flagset.Parse(args[1:])

	if printVersion {
		fmt.Fprintln(os.Stderr, "cefsim: Cefore scenario builder for ns-3/DCE")
		fmt.Fprintln(os.Stderr, "Version "+core.Version+" (Built "+core.BuildTime+")")
		fmt.Fprintln(os.Stderr, "Released under the terms of the MIT License")
		return
	}
	if flagset.NArg() > 0 {
		flagset.Usage()
		os.Exit(2)
	}

	core.StartTimestamp = time.Now()
	config, err := opts.Load(flagset)
	if err != nil {
		core.InitializeLogger(os.Stderr, "INFO")
		core.LogFatal("Main", "Unable to load configuration: ", err)
	}

	gen, err := NewGenerator(config)
	if err != nil {
		core.LogFatal("Main", err)
	}
	if err = gen.Run(); err != nil {
		core.LogFatal("Main", err)
	}
}
