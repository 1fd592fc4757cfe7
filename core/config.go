/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/named-data/cefsim/ccn"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go4.org/netipx"
	"golang.org/x/exp/slices"
)

// Config is the configuration of one scenario run. It is assembled once at
// startup and passed to every generator.
type Config struct {
	Core struct {
		// Log level: TRACE, DEBUG, INFO, WARN, ERROR, FATAL
		LogLevel string `json:"log_level"`
	} `json:"core"`

	Scenario struct {
		// Directory in which files-<nodeId> trees are created
		WorkDir string `json:"work_dir"`
		// Directory holding the default Cefore configuration files
		TemplateDir string `json:"template_dir"`
		// Number of WiFi station (consumer) nodes
		NumWifiNodes int `json:"num_wifi_nodes"`
		// Name prefix routed by every generated FIB
		ContentNamePrefix string `json:"content_name_prefix"`
		// Real-world next hop of the access points
		NextHop string `json:"nexthop"`
		// Whether access points run with the content store enabled
		EnableAPCache bool `json:"enable_ap_cache"`
	} `json:"scenario"`

	Network struct {
		// Subnet of the CSMA segment joining the tap node and access points
		CsmaSubnet string `json:"csma_subnet"`
		// Subnet shared by access point and station WiFi devices
		WifiSubnet string `json:"wifi_subnet"`
		// Address and mask of the emulated device on the tap node
		TapAddress string `json:"tap_address"`
		// Host interface bound by the emulated device
		EmuDevice string `json:"emu_device"`
		// Host tap device name
		TapName string `json:"tap_name"`
		// CSMA channel data rate in bit/s
		CsmaRate int `json:"csma_rate"`
		// CSMA channel delay in milliseconds
		CsmaDelayMs int `json:"csma_delay_ms"`
		// WiFi SSID
		Ssid string `json:"ssid"`
	} `json:"network"`

	Apps struct {
		// Applications run on the stations: cefore or tcp
		Mode string `json:"mode"`
		// Content name retrieved by consumers, relative to the prefix
		ContentName string `json:"content_name"`
		// File written by cefgetfile on each consumer
		OutFile string `json:"out_file"`
		// cefgetfile pipeline size, used when SMI is off
		Pipeline int `json:"pipeline"`
		// Use symbolic Interests (-z sg) instead of a fixed pipeline
		UseSMI bool `json:"use_smi"`
		// Stop after this many chunks; 0 disables the limit
		MaxChunk int `json:"max_chunk"`
		// Start times in simulated seconds
		StationDaemonStart float64 `json:"station_daemon_start"`
		APDaemonStart      float64 `json:"ap_daemon_start"`
		ConsumerStart      float64 `json:"consumer_start"`
		// Consumer start spacing between stations
		ConsumerInterval float64 `json:"consumer_interval"`
		// Consumer stop time; 0 picks the mode default (none for cefore, 45s for tcp)
		ConsumerStop float64 `json:"consumer_stop"`
		// Simulation stop time; 0 picks the mode default (41s for cefore, 50s for tcp)
		StopTime float64 `json:"stop_time"`

		// Address of the iperf server, required in tcp mode
		PublisherAddr string `json:"publisher_addr"`
		// iperf server port
		IperfPort int `json:"iperf_port"`
		// iperf report interval in seconds
		IperfInterval float64 `json:"iperf_interval"`
		// iperf transmit duration in seconds
		IperfDuration int `json:"iperf_duration"`
	} `json:"apps"`

	// Parsed values, filled in by Parse
	PrefixN     ccn.Name     `json:"-"`
	NextHopIP   netip.Addr   `json:"-"`
	CsmaPrefix  netip.Prefix `json:"-"`
	WifiPrefix  netip.Prefix `json:"-"`
	TapPrefix   netip.Prefix `json:"-"`
	PublisherIP netip.Addr   `json:"-"`
}

// Station application modes.
const (
	// ModeCefore runs cefnetd everywhere and cefgetfile on the stations.
	ModeCefore = "cefore"
	// ModeTCP is the IP baseline: an iperf client on every station.
	ModeTCP = "tcp"
)

var modeStopTimes = map[string]float64{
	ModeCefore: 41,
	ModeTCP:    50,
}

var modeConsumerStops = map[string]float64{
	ModeCefore: 0,
	ModeTCP:    45,
}

// DefaultConfig returns the configuration of the reference scenario: one
// station roaming between two access points, fetching ccn:/streaming/test.
func DefaultConfig() *Config {
	c := &Config{}
	c.Core.LogLevel = "INFO"

	c.Scenario.WorkDir = "."
	c.Scenario.TemplateDir = "./CeforeDefaultConfigFile"
	c.Scenario.NumWifiNodes = 1
	c.Scenario.ContentNamePrefix = "ccn:/streaming"
	c.Scenario.NextHop = "192.168.2.6"
	c.Scenario.EnableAPCache = true

	c.Network.CsmaSubnet = "10.1.1.0/24"
	c.Network.WifiSubnet = "10.2.2.0/24"
	c.Network.TapAddress = "192.168.2.32/24"
	c.Network.EmuDevice = "data"
	c.Network.TapName = "tap0"
	c.Network.CsmaRate = 100000000
	c.Network.CsmaDelayMs = 1
	c.Network.Ssid = "ns-3-ssid"

	c.Apps.Mode = ModeCefore
	c.Apps.ContentName = "test"
	c.Apps.OutFile = "/tmp/tmp"
	c.Apps.Pipeline = 32
	c.Apps.UseSMI = true
	c.Apps.StationDaemonStart = 0.1
	c.Apps.APDaemonStart = 0.2
	c.Apps.ConsumerStart = 1.0
	c.Apps.IperfPort = 80
	c.Apps.IperfInterval = 1
	c.Apps.IperfDuration = 40
	return c
}

// LoadConfig reads the configuration file over the defaults.
// Files ending in .yml or .yaml are decoded as YAML, anything else as TOML.
// Both reject unknown keys and values of the wrong type.
// The result is not yet validated; call Parse.
func LoadConfig(file string) (*Config, error) {
	c := DefaultConfig()
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml":
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrap(err, "unable to open configuration file")
		}
		defer f.Close()

		dec := yaml.NewDecoder(f, yaml.Strict())
		if err = dec.Decode(c); err != nil {
			return nil, errors.Wrap(err, "unable to parse configuration file")
		}
	default:
		tree, err := toml.LoadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load configuration file")
		}
		if err = c.loadTree(tree); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// tomlFields maps every "table.key" of the TOML file to the field it sets.
func (c *Config) tomlFields() map[string]interface{} {
	return map[string]interface{}{
		"core.log_level": &c.Core.LogLevel,

		"scenario.work_dir":            &c.Scenario.WorkDir,
		"scenario.template_dir":        &c.Scenario.TemplateDir,
		"scenario.num_wifi_nodes":      &c.Scenario.NumWifiNodes,
		"scenario.content_name_prefix": &c.Scenario.ContentNamePrefix,
		"scenario.nexthop":             &c.Scenario.NextHop,
		"scenario.enable_ap_cache":     &c.Scenario.EnableAPCache,

		"network.csma_subnet":   &c.Network.CsmaSubnet,
		"network.wifi_subnet":   &c.Network.WifiSubnet,
		"network.tap_address":   &c.Network.TapAddress,
		"network.emu_device":    &c.Network.EmuDevice,
		"network.tap_name":      &c.Network.TapName,
		"network.csma_rate":     &c.Network.CsmaRate,
		"network.csma_delay_ms": &c.Network.CsmaDelayMs,
		"network.ssid":          &c.Network.Ssid,

		"apps.mode":                 &c.Apps.Mode,
		"apps.content_name":         &c.Apps.ContentName,
		"apps.out_file":             &c.Apps.OutFile,
		"apps.pipeline":             &c.Apps.Pipeline,
		"apps.use_smi":              &c.Apps.UseSMI,
		"apps.max_chunk":            &c.Apps.MaxChunk,
		"apps.station_daemon_start": &c.Apps.StationDaemonStart,
		"apps.ap_daemon_start":      &c.Apps.APDaemonStart,
		"apps.consumer_start":       &c.Apps.ConsumerStart,
		"apps.consumer_interval":    &c.Apps.ConsumerInterval,
		"apps.consumer_stop":        &c.Apps.ConsumerStop,
		"apps.stop_time":            &c.Apps.StopTime,
		"apps.publisher_addr":       &c.Apps.PublisherAddr,
		"apps.iperf_port":           &c.Apps.IperfPort,
		"apps.iperf_interval":       &c.Apps.IperfInterval,
		"apps.iperf_duration":       &c.Apps.IperfDuration,
	}
}

func (c *Config) loadTree(tree *toml.Tree) error {
	fields := c.tomlFields()
	tables := tree.Keys()
	slices.Sort(tables)
	for _, table := range tables {
		sub, ok := tree.GetPath([]string{table}).(*toml.Tree)
		if !ok {
			return errors.Wrapf(ErrInvalidConfig, "unknown key %q outside of a table", table)
		}
		keys := sub.Keys()
		slices.Sort(keys)
		for _, key := range keys {
			path := table + "." + key
			field, ok := fields[path]
			if !ok {
				return errors.Wrapf(ErrInvalidConfig, "unknown key %q", path)
			}
			if err := setValue(field, sub.GetPath([]string{key})); err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
			}
		}
	}
	return nil
}

// Parse validates the configuration and fills in the parsed fields.
func (c *Config) Parse() (err error) {
	if c.Scenario.NumWifiNodes < 1 {
		return errors.Wrapf(ErrInvalidConfig, "num_wifi_nodes must be at least 1, got %d", c.Scenario.NumWifiNodes)
	}
	if c.Scenario.WorkDir == "" || c.Scenario.TemplateDir == "" {
		return errors.Wrap(ErrInvalidConfig, "work_dir and template_dir must be set")
	}

	c.PrefixN, err = ccn.ParseName(c.Scenario.ContentNamePrefix)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "content_name_prefix: %v", err)
	}
	if c.Apps.ContentName == "" || strings.ContainsAny(c.Apps.ContentName, " \t/") {
		return errors.Wrapf(ErrInvalidConfig, "content_name %q must be a single name component", c.Apps.ContentName)
	}

	c.NextHopIP, err = netip.ParseAddr(c.Scenario.NextHop)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "nexthop: %v", err)
	}

	c.CsmaPrefix, err = netip.ParsePrefix(c.Network.CsmaSubnet)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "csma_subnet: %v", err)
	}
	c.WifiPrefix, err = netip.ParsePrefix(c.Network.WifiSubnet)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "wifi_subnet: %v", err)
	}
	c.TapPrefix, err = netip.ParsePrefix(c.Network.TapAddress)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "tap_address: %v", err)
	}
	c.CsmaPrefix = c.CsmaPrefix.Masked()
	c.WifiPrefix = c.WifiPrefix.Masked()

	// Simulated subnets must not overlap each other or the real network
	var sb netipx.IPSetBuilder
	sb.AddPrefix(c.CsmaPrefix)
	simulated, err := sb.IPSet()
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "csma_subnet: %v", err)
	}
	if simulated.OverlapsPrefix(c.WifiPrefix) {
		return errors.Wrapf(ErrInvalidConfig, "wifi_subnet %s overlaps csma_subnet %s", c.WifiPrefix, c.CsmaPrefix)
	}
	sb.AddPrefix(c.WifiPrefix)
	if simulated, err = sb.IPSet(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "wifi_subnet: %v", err)
	}
	if simulated.OverlapsPrefix(c.TapPrefix.Masked()) {
		return errors.Wrapf(ErrInvalidConfig, "tap_address %s overlaps a simulated subnet", c.TapPrefix)
	}
	if simulated.Contains(c.NextHopIP) {
		return errors.Wrapf(ErrInvalidConfig, "nexthop %s lies inside a simulated subnet", c.NextHopIP)
	}

	if c.Network.CsmaRate <= 0 || c.Network.CsmaDelayMs < 0 {
		return errors.Wrap(ErrInvalidConfig, "csma_rate must be positive and csma_delay_ms non-negative")
	}
	if !c.Apps.UseSMI && c.Apps.Pipeline < 1 {
		return errors.Wrapf(ErrInvalidConfig, "pipeline must be at least 1, got %d", c.Apps.Pipeline)
	}
	if c.Apps.MaxChunk < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_chunk must not be negative, got %d", c.Apps.MaxChunk)
	}

	stopTime, ok := modeStopTimes[c.Apps.Mode]
	if !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown mode %q", c.Apps.Mode)
	}
	if c.Apps.StopTime == 0 {
		c.Apps.StopTime = stopTime
	}
	if c.Apps.ConsumerStop == 0 {
		c.Apps.ConsumerStop = modeConsumerStops[c.Apps.Mode]
	}
	if c.Apps.Mode == ModeTCP {
		if c.Apps.PublisherAddr == "" {
			return errors.Wrap(ErrInvalidConfig, "publisher_addr is required in tcp mode")
		}
		c.PublisherIP, err = netip.ParseAddr(c.Apps.PublisherAddr)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "publisher_addr: %v", err)
		}
		if c.Apps.IperfPort < 1 || c.Apps.IperfPort > math.MaxUint16 {
			return errors.Wrapf(ErrInvalidConfig, "iperf_port %d out of range", c.Apps.IperfPort)
		}
		if c.Apps.IperfInterval <= 0 || c.Apps.IperfDuration < 1 {
			return errors.Wrap(ErrInvalidConfig, "iperf_interval and iperf_duration must be positive")
		}
	}

	// Daemons must be up before the first consumer, and every consumer before the stop time
	a := c.Apps
	if a.StationDaemonStart < 0 || a.APDaemonStart < 0 || a.ConsumerStart < 0 || a.ConsumerInterval < 0 {
		return errors.Wrap(ErrInvalidConfig, "start times and consumer_interval must not be negative")
	}
	if a.Mode == ModeCefore && a.ConsumerStart <= math.Max(a.StationDaemonStart, a.APDaemonStart) {
		return errors.Wrapf(ErrInvalidConfig, "consumer_start %g must follow the daemon start times", a.ConsumerStart)
	}
	lastConsumer := a.ConsumerStart + float64(c.Scenario.NumWifiNodes-1)*a.ConsumerInterval
	if a.StopTime <= lastConsumer {
		return errors.Wrapf(ErrInvalidConfig, "stop_time %g must follow the last consumer start %g", a.StopTime, lastConsumer)
	}
	if a.ConsumerStop < 0 || (a.ConsumerStop > 0 && (a.ConsumerStop <= lastConsumer || a.ConsumerStop > a.StopTime)) {
		return errors.Wrapf(ErrInvalidConfig, "consumer_stop %g must lie between the last consumer start %g and stop_time %g",
			a.ConsumerStop, lastConsumer, a.StopTime)
	}
	return nil
}

// ContentName returns the full name retrieved by consumers.
func (c *Config) ContentName() ccn.Name {
	return c.PrefixN.Append(c.Apps.ContentName)
}

func setValue(field interface{}, valRaw interface{}) error {
	switch field := field.(type) {
	case *string:
		val, ok := valRaw.(string)
		if !ok {
			return errors.Errorf("expected a string, got %T", valRaw)
		}
		*field = val
	case *int:
		val, ok := valRaw.(int64)
		if !ok {
			return errors.Errorf("expected an integer, got %T", valRaw)
		}
		if val < math.MinInt32 || val > math.MaxInt32 {
			return errors.Errorf("%d out of range", val)
		}
		*field = int(val)
	case *bool:
		val, ok := valRaw.(bool)
		if !ok {
			return errors.Errorf("expected a boolean, got %T", valRaw)
		}
		*field = val
	case *float64:
		switch val := valRaw.(type) {
		case float64:
			*field = val
		case int64:
			*field = float64(val)
		default:
			return errors.Errorf("expected a number, got %T", valRaw)
		}
	default:
		return errors.Errorf("unsupported field type %T", field)
	}
	return nil
}
