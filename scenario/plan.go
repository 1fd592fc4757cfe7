package scenario

import (
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Binaries launched under DCE.
const (
	BinaryCefnetd    = "cefnetd"
	BinaryCefgetfile = "cefgetfile"
	BinaryIperf      = "iperf"
)

// Launch is one application started on a node at a simulated time.
type Launch struct {
	Node   int      `json:"node"`
	Binary string   `json:"binary"`
	Args   []string `json:"args,omitempty"`
	Start  float64  `json:"start"`
	Stop   float64  `json:"stop,omitempty"`
}

// NodePlan describes a node's devices and initial mobility.
type NodePlan struct {
	ID       int     `json:"id"`
	Role     string  `json:"role"`
	CsmaAddr string  `json:"csma_addr,omitempty"`
	WifiAddr string  `json:"wifi_addr,omitempty"`
	Gateway  string  `json:"gateway,omitempty"`
	Position *Vector `json:"position,omitempty"`
	Velocity *Vector `json:"velocity,omitempty"`
}

// Plan is what the simulation program runs once the files are in place.
type Plan struct {
	Mode        string     `json:"mode"`
	ContentName string     `json:"content_name,omitempty"`
	TapAddress  string     `json:"tap_address"`
	Nodes       []NodePlan `json:"nodes"`
	Launches    []Launch   `json:"launches"`
	StopTime    float64    `json:"stop_time"`
}

// NewPlan schedules the station applications of the configured mode. In
// cefore mode cefnetd runs on every Cefore node and cefgetfile on every
// station; in tcp mode every station runs an iperf client. Launches are
// ordered by start time, then node id.
func NewPlan(config *core.Config, topo *Topology) *Plan {
	p := &Plan{
		Mode:       config.Apps.Mode,
		TapAddress: topo.TapAddr.String(),
		StopTime:   config.Apps.StopTime,
	}

	for _, node := range topo.Nodes {
		p.Nodes = append(p.Nodes, nodePlan(node))
	}

	binary, args := BinaryIperf, iperfArgs(config)
	if config.Apps.Mode == core.ModeCefore {
		p.ContentName = config.ContentName().String()
		for _, station := range topo.Stations() {
			p.Launches = append(p.Launches, Launch{Node: station.ID, Binary: BinaryCefnetd, Start: config.Apps.StationDaemonStart})
		}
		for _, ap := range topo.AccessPoints() {
			p.Launches = append(p.Launches, Launch{Node: ap.ID, Binary: BinaryCefnetd, Start: config.Apps.APDaemonStart})
		}
		binary, args = BinaryCefgetfile, consumerArgs(config)
	}

	start := config.Apps.ConsumerStart
	for _, station := range topo.Stations() {
		p.Launches = append(p.Launches, Launch{
			Node:   station.ID,
			Binary: binary,
			Args:   append([]string(nil), args...),
			Start:  start,
			Stop:   config.Apps.ConsumerStop,
		})
		start += config.Apps.ConsumerInterval
	}

	slices.SortStableFunc(p.Launches, func(a, b Launch) bool {
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Node < b.Node
	})
	return p
}

func iperfArgs(config *core.Config) []string {
	return []string{
		"-c", config.Apps.PublisherAddr,
		"-i", strconv.FormatFloat(config.Apps.IperfInterval, 'g', -1, 64),
		"-p", strconv.Itoa(config.Apps.IperfPort),
		"--time", strconv.Itoa(config.Apps.IperfDuration),
	}
}

func consumerArgs(config *core.Config) []string {
	args := []string{config.ContentName().String(), "-f", config.Apps.OutFile}
	if config.Apps.UseSMI {
		args = append(args, "-z", "sg")
	} else {
		args = append(args, "-s", strconv.Itoa(config.Apps.Pipeline))
	}
	if config.Apps.MaxChunk > 0 {
		args = append(args, "-m", strconv.Itoa(config.Apps.MaxChunk))
	}
	return args
}

func nodePlan(node *Node) NodePlan {
	np := NodePlan{ID: node.ID, Role: node.Role.String()}
	if node.CsmaAddr.IsValid() {
		np.CsmaAddr = node.CsmaAddr.String()
	}
	if node.WifiAddr.IsValid() {
		np.WifiAddr = node.WifiAddr.String()
	}
	if node.Gateway.IsValid() {
		np.Gateway = node.Gateway.String()
	}
	// Only WiFi nodes carry a mobility model
	if node.WifiAddr.IsValid() {
		pos, vel := node.Position, node.Velocity
		np.Position, np.Velocity = &pos, &vel
	}
	return np
}

// LaunchesOn returns the launches scheduled on a node.
func (p *Plan) LaunchesOn(nodeID int) []Launch {
	var out []Launch
	for _, l := range p.Launches {
		if l.Node == nodeID {
			out = append(out, l)
		}
	}
	return out
}

// WriteYAML writes the plan as a YAML document.
func (p *Plan) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "unable to encode plan")
	}
	_, err = w.Write(out)
	return err
}
