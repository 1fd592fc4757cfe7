package scenario_test

import (
	"testing"

	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/scenario"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedConfig(t *testing.T, numWifiNodes int) *core.Config {
	config := core.DefaultConfig()
	config.Scenario.NumWifiNodes = numWifiNodes
	require.NoError(t, config.Parse())
	return config
}

func TestTopology(t *testing.T) {
	topo, err := scenario.NewTopology(parsedConfig(t, 2))
	require.NoError(t, err)
	require.Equal(t, 5, len(topo.Nodes))

	tap := topo.Nodes[0]
	assert.Equal(t, scenario.TapNode{}, tap.Role)
	assert.Equal(t, "10.1.1.1", tap.CsmaAddr.String())
	assert.False(t, tap.WifiAddr.IsValid())
	assert.Equal(t, "192.168.2.6", tap.Gateway.String())

	aps := topo.AccessPoints()
	require.Equal(t, 2, len(aps))
	assert.Equal(t, scenario.AccessPoint{Index: 0}, aps[0].Role)
	assert.Equal(t, 1, aps[0].ID)
	assert.Equal(t, "10.1.1.2", aps[0].CsmaAddr.String())
	assert.Equal(t, "10.2.2.1", aps[0].WifiAddr.String())
	assert.Equal(t, "10.1.1.1", aps[0].Gateway.String())
	assert.Equal(t, scenario.AccessPoint{Index: 1}, aps[1].Role)
	assert.Equal(t, "10.1.1.3", aps[1].CsmaAddr.String())
	assert.Equal(t, "10.2.2.2", aps[1].WifiAddr.String())
	assert.Equal(t, scenario.Vector{X: 300}, aps[1].Position)

	stations := topo.Stations()
	require.Equal(t, 2, len(stations))
	assert.Equal(t, 3, stations[0].ID)
	assert.Equal(t, scenario.WifiConsumer{Index: 0}, stations[0].Role)
	assert.Equal(t, "10.2.2.3", stations[0].WifiAddr.String())
	assert.False(t, stations[0].CsmaAddr.IsValid())
	assert.Equal(t, 4, stations[1].ID)
	assert.Equal(t, "10.2.2.4", stations[1].WifiAddr.String())
	assert.Equal(t, scenario.StationVelocity, stations[1].Velocity)

	assert.Equal(t, 4, len(topo.CeforeNodes()))
}

func TestTopologyRole(t *testing.T) {
	topo, err := scenario.NewTopology(parsedConfig(t, 1))
	require.NoError(t, err)

	role, err := topo.Role(3)
	require.NoError(t, err)
	assert.Equal(t, "wifi-consumer-0", role.String())

	role, err = topo.Role(2)
	require.NoError(t, err)
	assert.Equal(t, "access-point-2", role.String())

	for _, id := range []int{-1, 4, 100} {
		_, err = topo.Role(id)
		assert.True(t, errors.Is(err, core.ErrUnrecognizedRole), "node %d", id)
	}
}

func TestTopologySubnetExhausted(t *testing.T) {
	config := core.DefaultConfig()
	config.Network.WifiSubnet = "10.2.2.0/29"
	config.Scenario.NumWifiNodes = 5
	require.NoError(t, config.Parse())

	// a /29 has 6 host addresses: 2 access points and 4 stations
	_, err := scenario.NewTopology(config)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	config.Scenario.NumWifiNodes = 4
	topo, err := scenario.NewTopology(config)
	require.NoError(t, err)
	assert.Equal(t, "10.2.2.6", topo.Stations()[3].WifiAddr.String())
}
