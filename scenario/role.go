package scenario

import "strconv"

// Role is the part a node plays in the scenario. The set of roles is closed:
// TapNode, AccessPoint and WifiConsumer are the only implementations.
type Role interface {
	isRole()
	String() string
}

// TapNode bridges the simulated CSMA segment to the real network.
type TapNode struct{}

// AccessPoint is one of the two WiFi access points on the CSMA segment.
type AccessPoint struct {
	// Index is 0 for the first access point and 1 for the second
	Index int
}

// WifiConsumer is a WiFi station fetching content.
type WifiConsumer struct {
	// Index among the stations, starting at 0
	Index int
}

func (TapNode) isRole()      {}
func (AccessPoint) isRole()  {}
func (WifiConsumer) isRole() {}

func (TapNode) String() string {
	return "tap-node"
}

func (r AccessPoint) String() string {
	return "access-point-" + strconv.Itoa(r.Index+1)
}

func (r WifiConsumer) String() string {
	return "wifi-consumer-" + strconv.Itoa(r.Index)
}
