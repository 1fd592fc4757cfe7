package scenario

import (
	"github.com/named-data/cefsim/cefore"
	"github.com/named-data/cefsim/core"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Report lists the files written by a build.
type Report struct {
	Bundles      map[int][]string
	FIBs         map[int]string
	CacheMarkers map[int]string
}

func newReport() *Report {
	return &Report{
		Bundles:      make(map[int][]string),
		FIBs:         make(map[int]string),
		CacheMarkers: make(map[int]string),
	}
}

// NodeIDs returns the ids of all nodes that received files, in ascending order.
func (r *Report) NodeIDs() []int {
	ids := maps.Keys(r.Bundles)
	for id := range r.FIBs {
		if _, ok := r.Bundles[id]; !ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// NumFiles returns the number of distinct files written.
func (r *Report) NumFiles() int {
	seen := make(map[string]struct{})
	for _, paths := range r.Bundles {
		for _, path := range paths {
			seen[path] = struct{}{}
		}
	}
	for _, path := range r.FIBs {
		seen[path] = struct{}{}
	}
	for _, path := range r.CacheMarkers {
		seen[path] = struct{}{}
	}
	return len(seen)
}

// Builder prepares the per-node Cefore state of a scenario.
type Builder struct {
	config *core.Config
	topo   *Topology
	layout cefore.Layout
}

// NewBuilder validates the configuration and lays out the topology.
func NewBuilder(config *core.Config) (*Builder, error) {
	if err := config.Parse(); err != nil {
		return nil, err
	}
	topo, err := NewTopology(config)
	if err != nil {
		return nil, err
	}
	return &Builder{
		config: config,
		topo:   topo,
		layout: cefore.NewLayout(config),
	}, nil
}

// Topology returns the topology the builder works on.
func (b *Builder) Topology() *Topology {
	return b.topo
}

// Layout returns the filesystem layout the builder writes to.
func (b *Builder) Layout() cefore.Layout {
	return b.layout
}

// Build copies config bundles to every Cefore node, writes the FIBs of the
// access points and then the stations, and finally enables caching on the
// access points if configured. It stops at the first error and returns the
// files written so far. The tcp mode runs no Cefore daemon and gets no files.
func (b *Builder) Build() (*Report, error) {
	report := newReport()
	if b.config.Apps.Mode != core.ModeCefore {
		core.LogInfo("Builder", "Mode ", b.config.Apps.Mode, " needs no Cefore config")
		return report, nil
	}

	for _, node := range b.topo.CeforeNodes() {
		paths, err := cefore.CopyConfigBundle(b.layout, node.ID)
		if len(paths) > 0 {
			report.Bundles[node.ID] = paths
		}
		if err != nil {
			return report, err
		}
	}
	core.LogInfo("Builder", "Copied Cefore config to ", len(report.Bundles), " nodes")

	fibNodes := append(append([]*Node{}, b.topo.AccessPoints()...), b.topo.Stations()...)
	for _, node := range fibNodes {
		path, err := b.WriteFIB(node.ID)
		if err != nil {
			return report, err
		}
		report.FIBs[node.ID] = path
	}

	if b.config.Scenario.EnableAPCache {
		for _, ap := range b.topo.AccessPoints() {
			path, err := cefore.EnableCache(b.layout, ap.ID)
			if err != nil {
				return report, err
			}
			report.CacheMarkers[ap.ID] = path
		}
	}
	return report, nil
}

// WriteFIB resolves the role of the node and writes its FIB. Nothing is
// written if the node has no role with a FIB.
func (b *Builder) WriteFIB(nodeID int) (string, error) {
	role, err := b.topo.Role(nodeID)
	if err != nil {
		return "", err
	}
	fib, err := FIBFor(role, b.config, b.topo)
	if err != nil {
		return "", err
	}
	core.LogDebug("Builder", "Creating FIB on node-", nodeID, " (", role, ")")
	return cefore.WriteFIB(b.layout, nodeID, fib)
}

// GeneratedFiles returns the bundle files of a node that Build overwrites
// instead of copying from the templates.
func (b *Builder) GeneratedFiles(node *Node) []string {
	var files []string
	switch node.Role.(type) {
	case AccessPoint:
		files = append(files, cefore.CefnetdFib)
		if b.config.Scenario.EnableAPCache {
			files = append(files, cefore.CefnetdConf)
		}
	case WifiConsumer:
		files = append(files, cefore.CefnetdFib)
	}
	return files
}

// Build prepares a scenario in one call.
func Build(config *core.Config) (*Report, error) {
	b, err := NewBuilder(config)
	if err != nil {
		return nil, err
	}
	return b.Build()
}
