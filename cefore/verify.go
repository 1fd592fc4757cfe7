package cefore

import (
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// VerifyResult reports how a node's bundle compares with the templates.
type VerifyResult struct {
	NodeID   int
	Matched  []string
	Modified []string
	Missing  []string
	Skipped  []string
}

// OK returns whether every checked file matched its template.
func (r *VerifyResult) OK() bool {
	return len(r.Modified) == 0 && len(r.Missing) == 0
}

// VerifyBundle compares each bundle file of the node with its template by
// content digest. Files named in skip, usually the ones generated after the
// copy, are not compared.
// An unreadable template is an error; a missing node file is reported in the result.
func VerifyBundle(l Layout, nodeID int, skip []string) (*VerifyResult, error) {
	if err := checkNodeID(nodeID); err != nil {
		return nil, err
	}

	result := &VerifyResult{NodeID: nodeID}
	for _, file := range BundleFiles {
		if slices.Contains(skip, file) {
			result.Skipped = append(result.Skipped, file)
			continue
		}

		want, err := digestFile(l.TemplatePath(file))
		if err != nil {
			return nil, errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot read template: %v", err)
		}
		got, err := digestFile(l.NodePath(nodeID, file))
		switch {
		case errors.Is(err, os.ErrNotExist):
			result.Missing = append(result.Missing, file)
		case err != nil:
			return nil, errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot read node file: %v", err)
		case got != want:
			core.LogTrace("Verify", "node-", nodeID, " ", file, ": digest ", got, " != ", want)
			result.Modified = append(result.Modified, file)
		default:
			result.Matched = append(result.Matched, file)
		}
	}
	return result, nil
}

func digestFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, errors.Wrap(err, path)
	}
	return h.Sum64(), nil
}
