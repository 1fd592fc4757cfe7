package scenario

import (
	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/table"
	"github.com/pkg/errors"
)

// FIBFor returns the FIB of a node with the given role.
// Access points forward the prefix to the real-world next hop. Consumers
// forward it to both access points so the route survives a handover.
// The tap node runs no forwarder and has no FIB.
func FIBFor(role Role, config *core.Config, topo *Topology) (*table.FIB, error) {
	fib := &table.FIB{}
	switch r := role.(type) {
	case AccessPoint:
		fib.Add(table.NewUDPEntry(config.PrefixN, config.NextHopIP.String()))
	case WifiConsumer:
		aps := topo.AccessPoints()
		nexthops := make([]string, 0, len(aps))
		for _, ap := range aps {
			nexthops = append(nexthops, ap.WifiAddr.String())
		}
		fib.Add(table.NewUDPEntry(config.PrefixN, nexthops...))
	case TapNode:
		return nil, errors.Wrapf(core.ErrUnrecognizedRole, "%s has no FIB", r)
	default:
		return nil, errors.Wrapf(core.ErrUnrecognizedRole, "role %v", role)
	}
	return fib, nil
}
