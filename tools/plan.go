package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/executor"
	"github.com/named-data/cefsim/scenario"
	"github.com/pkg/errors"
)

type PlanPrinter struct {
	args []string
	opts executor.Options
	out  string
}

func RunPlan(args []string) {
	(&PlanPrinter{args: args}).run()
}

func (pp *PlanPrinter) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", pp.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints the node layout and the DCE application launch schedule as YAML.\n\n")
}

func (pp *PlanPrinter) run() {
	flagset := flag.NewFlagSet("plan", flag.ExitOnError)
	flagset.Usage = func() {
		pp.usage()
		flagset.PrintDefaults()
	}
	pp.opts.Register(flagset)
	flagset.StringVar(&pp.out, "o", "", "write the plan to this file instead of stdout")
	flagset.Parse(pp.args[1:])

	config, err := pp.opts.Load(flagset)
	if err != nil {
		core.LogFatal("Plan", "Unable to load configuration: ", err)
	}
	topo, err := scenario.NewTopology(config)
	if err != nil {
		core.LogFatal("Plan", err)
	}
	plan := scenario.NewPlan(config, topo)

	if err = writePlan(plan, pp.out); err != nil {
		core.LogFatal("Plan", err)
	}
	core.LogDebug("Plan", len(plan.Launches), " launches, stop at ", plan.StopTime, "s")
}

// writePlan writes the plan to path, or to stdout if path is empty.
func writePlan(plan *scenario.Plan, path string) error {
	if path == "" {
		return plan.WriteYAML(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create plan file")
	}
	if err = plan.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "unable to close plan file")
}
