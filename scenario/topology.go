package scenario

import (
	"net/netip"

	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
	"go4.org/netipx"
)

// Fixed shape of the CSMA segment: the tap node followed by the two access points.
const (
	TapNodeID       = 0
	NumAccessPoints = 2
	NumCsmaNodes    = 1 + NumAccessPoints
)

// Vector is a position in metres or a velocity in metres per second.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Initial mobility of the scenario: the stations drive past both access points.
var (
	StationPosition = Vector{X: -50, Y: 10}
	StationVelocity = Vector{X: 10}
	APPositions     = [NumAccessPoints]Vector{{X: 0}, {X: 300}}
)

// Node is one simulated node. Zero addresses mean the node has no such device.
type Node struct {
	ID       int
	Role     Role
	CsmaAddr netip.Addr
	WifiAddr netip.Addr
	Gateway  netip.Addr
	Position Vector
	Velocity Vector
}

// Topology is the node layout of the scenario. Node ids are assigned in
// creation order: CSMA nodes first, then WiFi stations.
type Topology struct {
	Nodes   []*Node
	TapAddr netip.Prefix
}

// NewTopology lays out the nodes for a parsed configuration.
func NewTopology(config *core.Config) (*Topology, error) {
	numStations := config.Scenario.NumWifiNodes
	t := &Topology{
		Nodes:   make([]*Node, 0, NumCsmaNodes+numStations),
		TapAddr: config.TapPrefix,
	}

	t.Nodes = append(t.Nodes, &Node{ID: TapNodeID, Role: TapNode{}, Gateway: config.NextHopIP})
	for i := 0; i < NumAccessPoints; i++ {
		t.Nodes = append(t.Nodes, &Node{ID: len(t.Nodes), Role: AccessPoint{Index: i}, Position: APPositions[i]})
	}
	for i := 0; i < numStations; i++ {
		t.Nodes = append(t.Nodes, &Node{
			ID:       len(t.Nodes),
			Role:     WifiConsumer{Index: i},
			Position: StationPosition,
			Velocity: StationVelocity,
		})
	}

	// CSMA addresses in node order
	csma := newAllocator(config.CsmaPrefix)
	for _, node := range t.Nodes[:NumCsmaNodes] {
		addr, err := csma.next()
		if err != nil {
			return nil, err
		}
		node.CsmaAddr = addr
	}

	// WiFi addresses: access points before stations
	wifi := newAllocator(config.WifiPrefix)
	for _, node := range t.Nodes[1:] {
		addr, err := wifi.next()
		if err != nil {
			return nil, err
		}
		node.WifiAddr = addr
	}

	// Access points route to the real network through the tap node
	for _, ap := range t.AccessPoints() {
		ap.Gateway = t.Nodes[TapNodeID].CsmaAddr
	}
	return t, nil
}

// Node returns the node with the given id.
func (t *Topology) Node(nodeID int) (*Node, error) {
	if nodeID < 0 || nodeID >= len(t.Nodes) {
		return nil, errors.Wrapf(core.ErrUnrecognizedRole, "no node with id %d", nodeID)
	}
	return t.Nodes[nodeID], nil
}

// Role returns the role of the node with the given id.
func (t *Topology) Role(nodeID int) (Role, error) {
	node, err := t.Node(nodeID)
	if err != nil {
		return nil, err
	}
	return node.Role, nil
}

// AccessPoints returns the access point nodes in index order.
func (t *Topology) AccessPoints() []*Node {
	return t.Nodes[1:NumCsmaNodes]
}

// Stations returns the WiFi station nodes in index order.
func (t *Topology) Stations() []*Node {
	return t.Nodes[NumCsmaNodes:]
}

// CeforeNodes returns the nodes that run cefnetd.
func (t *Topology) CeforeNodes() []*Node {
	return t.Nodes[1:]
}

// allocator hands out host addresses of a prefix in increasing order,
// mimicking the ns-3 address helper.
type allocator struct {
	prefix netip.Prefix
	last   netip.Addr
	cur    netip.Addr
}

func newAllocator(prefix netip.Prefix) *allocator {
	return &allocator{
		prefix: prefix,
		last:   netipx.PrefixLastIP(prefix),
		cur:    prefix.Addr(),
	}
}

func (a *allocator) next() (netip.Addr, error) {
	addr := a.cur.Next()
	// The last address of an IPv4 subnet is its broadcast address
	if !addr.IsValid() || !a.prefix.Contains(addr) || (addr.Is4() && addr == a.last) {
		return netip.Addr{}, errors.Wrapf(core.ErrInvalidConfig, "subnet %s has no addresses left", a.prefix)
	}
	a.cur = addr
	return addr, nil
}
