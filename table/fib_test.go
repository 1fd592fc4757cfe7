package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/named-data/cefsim/ccn"
	"github.com/named-data/cefsim/table"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryString(t *testing.T) {
	prefix, _ := ccn.ParseName("ccn:/streaming")
	assert.Equal(t, "ccn:/streaming udp 192.168.2.6",
		table.NewUDPEntry(prefix, "192.168.2.6").String())
	assert.Equal(t, "ccn:/streaming udp 10.2.2.1 10.2.2.2",
		table.NewUDPEntry(prefix, "10.2.2.1", "10.2.2.2").String())
}

func TestWriteTo(t *testing.T) {
	prefix, _ := ccn.ParseName("ccn:/streaming")
	fib := &table.FIB{}
	fib.Add(table.NewUDPEntry(prefix, "10.2.2.1", "10.2.2.2"))

	var buf bytes.Buffer
	n, err := fib.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "ccn:/streaming udp 10.2.2.1 10.2.2.2\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestParseFIB(t *testing.T) {
	fib, err := table.ParseFIB(strings.NewReader(
		"# default route\n" +
			"\n" +
			"ccn:/ udp 192.168.2.6\n" +
			"ccn:/streaming TCP 10.2.2.1 10.2.2.2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, len(fib.Entries))
	assert.Equal(t, "ccn:/", fib.Entries[0].Prefix.String())
	assert.Equal(t, table.TransportUDP, fib.Entries[0].Transport)
	assert.Equal(t, []string{"192.168.2.6"}, fib.Entries[0].Nexthops)
	assert.Equal(t, table.TransportTCP, fib.Entries[1].Transport)
	assert.Equal(t, []string{"10.2.2.1", "10.2.2.2"}, fib.Entries[1].Nexthops)

	_, err = table.ParseFIB(strings.NewReader("ccn:/streaming udp\n"))
	assert.True(t, errors.Is(err, table.ErrMalformedEntry))
	_, err = table.ParseFIB(strings.NewReader("ccn:/streaming sctp 10.0.0.1\n"))
	assert.True(t, errors.Is(err, table.ErrMalformedEntry))
	_, err = table.ParseFIB(strings.NewReader("/streaming udp 10.0.0.1\n"))
	assert.True(t, errors.Is(err, table.ErrMalformedEntry))
}

func TestLongestPrefix(t *testing.T) {
	fib, err := table.ParseFIB(strings.NewReader(
		"ccn:/ udp 192.168.2.6\n" +
			"ccn:/streaming udp 10.2.2.1\n" +
			"ccn:/streaming/live udp 10.2.2.2\n"))
	require.NoError(t, err)

	name, _ := ccn.ParseName("ccn:/streaming/test/chunk=1")
	entry, ok := fib.LongestPrefix(name)
	assert.True(t, ok)
	assert.Equal(t, []string{"10.2.2.1"}, entry.Nexthops)

	name, _ = ccn.ParseName("ccn:/streaming/live")
	entry, ok = fib.LongestPrefix(name)
	assert.True(t, ok)
	assert.Equal(t, []string{"10.2.2.2"}, entry.Nexthops)

	name, _ = ccn.ParseName("ccn:/other")
	entry, ok = fib.LongestPrefix(name)
	assert.True(t, ok)
	assert.Equal(t, []string{"192.168.2.6"}, entry.Nexthops)

	_, ok = (&table.FIB{}).LongestPrefix(name)
	assert.False(t, ok)
}
