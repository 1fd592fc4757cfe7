package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPlan(t *testing.T) *scenario.Plan {
	config := core.DefaultConfig()
	require.NoError(t, config.Parse())
	topo, err := scenario.NewTopology(config)
	require.NoError(t, err)
	return scenario.NewPlan(config, topo)
}

func TestWritePlanFile(t *testing.T) {
	plan := defaultPlan(t)
	path := filepath.Join(t.TempDir(), "plan.yml")
	require.NoError(t, writePlan(plan, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded := scenario.Plan{}
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, plan.Launches, decoded.Launches)
	assert.Equal(t, plan.StopTime, decoded.StopTime)
}

func TestWritePlanUnwritable(t *testing.T) {
	err := writePlan(defaultPlan(t), filepath.Join(t.TempDir(), "missing", "plan.yml"))
	assert.Error(t, err)
}
