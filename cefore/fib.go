/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package cefore

import (
	"os"

	"github.com/named-data/cefsim/core"
	"github.com/named-data/cefsim/table"
	"github.com/pkg/errors"
)

// WriteFIB replaces the node's cefnetd.fib with the given entries.
// The node directory must already exist.
func WriteFIB(l Layout, nodeID int, fib *table.FIB) (path string, err error) {
	if err = checkNodeID(nodeID); err != nil {
		return "", err
	}

	path = l.NodePath(nodeID, CefnetdFib)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return "", errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot open %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot close %s: %v", path, cerr)
		}
	}()

	if _, err = fib.WriteTo(f); err != nil {
		return "", errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot write %s: %v", path, err)
	}
	for _, entry := range fib.Entries {
		core.LogInfo("FIB", "node-", nodeID, ": ", entry)
	}
	return path, nil
}

// ReadFIB parses the node's cefnetd.fib.
func ReadFIB(l Layout, nodeID int) (*table.FIB, error) {
	if err := checkNodeID(nodeID); err != nil {
		return nil, err
	}
	return ReadFIBFile(l.NodePath(nodeID, CefnetdFib))
}

// ReadFIBFile parses a cefnetd.fib at an arbitrary path.
func ReadFIBFile(path string) (*table.FIB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot open %s: %v", path, err)
	}
	defer f.Close()

	fib, err := table.ParseFIB(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return fib, nil
}
