package executor

import (
	"flag"
	"os"

	"github.com/named-data/cefsim/core"
)

// Options are the command line options shared by every cefsim command that
// needs a scenario configuration. Flags override the configuration file.
type Options struct {
	ConfigFile   string
	NumWifiNodes int
	NextHop      string
	Prefix       string
	WorkDir      string
	TemplateDir  string
	NoAPCache    bool
	Mode         string
	PubAddr      string
	LogLevel     string
}

// Register adds the options to a flag set.
func (o *Options) Register(flagset *flag.FlagSet) {
	def := core.DefaultConfig()
	flagset.StringVar(&o.ConfigFile, "config", "", "Scenario configuration file (.toml, .yml)")
	flagset.IntVar(&o.NumWifiNodes, "num-wifi-nodes", def.Scenario.NumWifiNodes, "Number of WiFi station nodes")
	flagset.StringVar(&o.NextHop, "nexthop", def.Scenario.NextHop, "Real-world next hop of the access points")
	flagset.StringVar(&o.Prefix, "prefix", def.Scenario.ContentNamePrefix, "Content name prefix routed by the FIBs")
	flagset.StringVar(&o.WorkDir, "workdir", def.Scenario.WorkDir, "Directory receiving the files-<nodeId> trees")
	flagset.StringVar(&o.TemplateDir, "templates", def.Scenario.TemplateDir, "Directory holding the default Cefore config files")
	flagset.BoolVar(&o.NoAPCache, "no-ap-cache", false, "Do not enable the content store on access points")
	flagset.StringVar(&o.Mode, "mode", def.Apps.Mode, "Station applications: cefore or tcp")
	flagset.StringVar(&o.PubAddr, "pub-addr", "", "iperf server address, required with -mode tcp")
	flagset.StringVar(&o.LogLevel, "log-level", def.Core.LogLevel, "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
}

// Load reads the configuration file, if any, applies the flags that were
// explicitly set and initializes the logger. The configuration is validated.
func (o *Options) Load(flagset *flag.FlagSet) (*core.Config, error) {
	config := core.DefaultConfig()
	if o.ConfigFile != "" {
		var err error
		config, err = core.LoadConfig(o.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	flagset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "num-wifi-nodes":
			config.Scenario.NumWifiNodes = o.NumWifiNodes
		case "nexthop":
			config.Scenario.NextHop = o.NextHop
		case "prefix":
			config.Scenario.ContentNamePrefix = o.Prefix
		case "workdir":
			config.Scenario.WorkDir = o.WorkDir
		case "templates":
			config.Scenario.TemplateDir = o.TemplateDir
		case "no-ap-cache":
			config.Scenario.EnableAPCache = !o.NoAPCache
		case "mode":
			config.Apps.Mode = o.Mode
		case "pub-addr":
			config.Apps.PublisherAddr = o.PubAddr
		case "log-level":
			config.Core.LogLevel = o.LogLevel
		}
	})

	core.InitializeLogger(os.Stderr, config.Core.LogLevel)
	if err := config.Parse(); err != nil {
		return nil, err
	}
	return config, nil
}
