package tools

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/named-data/cefsim/ccn"
	"github.com/named-data/cefsim/cefore"
	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/executor"
	"github.com/named-data/cefsim/table"
)

type FibDump struct {
	args []string
	opts executor.Options
}

func RunFibDump(args []string) {
	(&FibDump{args: args}).run()
}

func (fd *FibDump) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <node-id|fib-file> [name]\n", fd.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints the FIB of a prepared node, read from <workdir>/files-<node-id>, or of a FIB file.\n")
	fmt.Fprintf(os.Stderr, "If a content name is given, prints the entry it would be forwarded with.\n\n")
}

func (fd *FibDump) run() {
	flagset := flag.NewFlagSet("fib", flag.ExitOnError)
	flagset.Usage = func() {
		fd.usage()
		flagset.PrintDefaults()
	}
	fd.opts.Register(flagset)
	flagset.Parse(fd.args[1:])

	args := flagset.Args()
	if len(args) < 1 || len(args) > 2 {
		flagset.Usage()
		os.Exit(3)
	}

	config, err := fd.opts.Load(flagset)
	if err != nil {
		core.LogFatal("FibDump", "Unable to load configuration: ", err)
	}
	fib, err := readFIB(cefore.NewLayout(config), args[0])
	if err != nil {
		core.LogFatal("FibDump", err)
	}

	if len(args) == 1 {
		for _, entry := range fib.Entries {
			fmt.Println(entry)
		}
		return
	}

	name, err := ccn.ParseName(args[1])
	if err != nil {
		core.LogFatal("FibDump", "Invalid name: ", err)
	}
	entry, ok := fib.LongestPrefix(name)
	if !ok {
		fmt.Printf("no route to %s\n", name)
		os.Exit(1)
	}
	fmt.Println(entry)
}

// readFIB reads the FIB of a node if target is a node id, or else the FIB
// file at path target.
func readFIB(l cefore.Layout, target string) (*table.FIB, error) {
	if nodeID, err := strconv.Atoi(target); err == nil {
		return cefore.ReadFIB(l, nodeID)
	}
	return cefore.ReadFIBFile(target)
}
