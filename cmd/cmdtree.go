package cmd

import (
	"fmt"
	"os"
	"strings"
)

const banner = `
            __     _
  ___ ___  / _|___(_)_ __ ___
 / __/ _ \| |_/ __| | '_ ' _ \
| (_|  __/|  _\__ \ | | | | | |
 \___\___||_| |___/_|_| |_| |_|
`

// CmdTree is a command with either a function to run or subcommands.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

func (c *CmdTree) Usage(args []string) {
	fmt.Fprintln(os.Stderr, banner[1:])
	fmt.Fprintf(os.Stderr, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		if sub.Name == "" {
			// separator
			fmt.Fprintln(os.Stderr)
			continue
		}
		spaces := strings.Repeat(" ", max(1, 16-len(sub.Name)))
		fmt.Fprintf(os.Stderr, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}

// Find returns the subcommand handling args and the arguments to pass it.
// It returns nil if no command matches.
func (c *CmdTree) Find(args []string) (*CmdTree, []string) {
	if c.Fun != nil {
		return c, args
	}
	if len(args) <= 1 {
		return nil, args
	}
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			sargs := append([]string{name}, args[2:]...)
			return sub.Find(sargs)
		}
	}
	return nil, args
}

func (c *CmdTree) Execute(args []string) {
	cmd, cargs := c.Find(args)
	if cmd == nil {
		c.Usage(args)
		return
	}
	cmd.Fun(cargs)
}
