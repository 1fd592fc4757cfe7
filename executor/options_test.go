package executor_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/executor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*core.Config, error) {
	opts := &executor.Options{}
	flagset := flag.NewFlagSet("test", flag.ContinueOnError)
	flagset.SetOutput(io.Discard)
	opts.Register(flagset)
	require.NoError(t, flagset.Parse(args))
	return opts.Load(flagset)
}

func TestOptionsDefaults(t *testing.T) {
	config, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig().Scenario, config.Scenario)
}

func TestOptionsOverrideFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[scenario]
num_wifi_nodes = 4
nexthop = "192.168.2.19"
`), 0644))

	config, err := parse(t, "-config", file, "-nexthop", "192.168.2.25", "-no-ap-cache", "-prefix", "ccn:/realRemote")
	require.NoError(t, err)
	// set in the file only
	assert.Equal(t, 4, config.Scenario.NumWifiNodes)
	// flags win over the file
	assert.Equal(t, "192.168.2.25", config.Scenario.NextHop)
	assert.False(t, config.Scenario.EnableAPCache)
	assert.Equal(t, "ccn:/realRemote", config.PrefixN.String())
}

func TestOptionsInvalid(t *testing.T) {
	_, err := parse(t, "-num-wifi-nodes", "0")
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	_, err = parse(t, "-config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestGenerator(t *testing.T) {
	root := t.TempDir()
	templates := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(templates, 0755))
	for _, file := range []string{"cefnetd.conf", "cefnetd.fib", "csmgrd.conf", "ccore-public-key",
		"default-public-key", "cefnetd.key", "default-private-key", "plugin.conf"} {
		require.NoError(t, os.WriteFile(filepath.Join(templates, file), []byte(file), 0644))
	}

	config, err := parse(t, "-workdir", root, "-templates", templates)
	require.NoError(t, err)
	gen, err := executor.NewGenerator(config)
	require.NoError(t, err)
	require.NoError(t, gen.Run())

	fib, err := os.ReadFile(filepath.Join(root, "files-3", "usr", "local", "cefore", "cefnetd.fib"))
	require.NoError(t, err)
	assert.Equal(t, "ccn:/streaming udp 10.2.2.1 10.2.2.2\n", string(fib))

	require.NoError(t, os.Remove(filepath.Join(templates, "plugin.conf")))
	gen, err = executor.NewGenerator(config)
	require.NoError(t, err)
	assert.True(t, errors.Is(gen.Run(), core.ErrMissingTemplateOrOutputPath))
}

func TestOptionsTCPMode(t *testing.T) {
	// the iperf server address cannot be guessed
	_, err := parse(t, "-mode", "tcp")
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	config, err := parse(t, "-mode", "tcp", "-pub-addr", "192.168.2.33")
	require.NoError(t, err)
	assert.Equal(t, core.ModeTCP, config.Apps.Mode)
	assert.Equal(t, "192.168.2.33", config.PublisherIP.String())
	assert.Equal(t, 50.0, config.Apps.StopTime)
	assert.Equal(t, 45.0, config.Apps.ConsumerStop)
}
