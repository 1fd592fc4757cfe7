package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/named-data/cefsim/ccn"
	"github.com/pkg/errors"
)

// Transports understood by cefnetd FIB files.
const (
	TransportUDP = "udp"
	TransportTCP = "tcp"
)

// ErrMalformedEntry is returned by ParseFIB for lines that are not FIB entries.
var ErrMalformedEntry = errors.New("malformed FIB entry")

// FIBEntry represents one line of a cefnetd FIB file.
type FIBEntry struct {
	Prefix    ccn.Name
	Transport string
	Nexthops  []string
}

// NewUDPEntry returns an entry forwarding prefix over UDP to the given next hops.
func NewUDPEntry(prefix ccn.Name, nexthops ...string) FIBEntry {
	return FIBEntry{
		Prefix:    prefix,
		Transport: TransportUDP,
		Nexthops:  nexthops,
	}
}

// String renders the entry as "<prefix> <transport> <addr>[ <addr2>...]".
func (e FIBEntry) String() string {
	fields := make([]string, 0, 2+len(e.Nexthops))
	fields = append(fields, e.Prefix.String(), e.Transport)
	fields = append(fields, e.Nexthops...)
	return strings.Join(fields, " ")
}

// FIB holds the entries of one node's FIB file.
type FIB struct {
	Entries []FIBEntry
}

// Add appends an entry.
func (f *FIB) Add(entry FIBEntry) {
	f.Entries = append(f.Entries, entry)
}

// WriteTo writes one newline-terminated line per entry.
func (f *FIB) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, entry := range f.Entries {
		n, err := io.WriteString(w, entry.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// LongestPrefix returns the entry with the longest prefix matching name.
func (f *FIB) LongestPrefix(name ccn.Name) (FIBEntry, bool) {
	var best FIBEntry
	found := false
	for _, entry := range f.Entries {
		if !entry.Prefix.IsPrefixOf(name) {
			continue
		}
		if !found || entry.Prefix.Size() > best.Prefix.Size() {
			best = entry
			found = true
		}
	}
	return best, found
}

// ParseFIB reads a FIB file. Blank lines and lines starting with # are skipped.
func ParseFIB(r io.Reader) (*FIB, error) {
	fib := &FIB{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.Wrapf(ErrMalformedEntry, "line %d: expected prefix, transport and next hop", lineNo)
		}
		prefix, err := ccn.ParseName(fields[0])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedEntry, "line %d: %v", lineNo, err)
		}
		transport := strings.ToLower(fields[1])
		if transport != TransportUDP && transport != TransportTCP {
			return nil, errors.Wrapf(ErrMalformedEntry, "line %d: unknown transport %q", lineNo, fields[1])
		}
		fib.Add(FIBEntry{
			Prefix:    prefix,
			Transport: transport,
			Nexthops:  fields[2:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read FIB")
	}
	return fib, nil
}
