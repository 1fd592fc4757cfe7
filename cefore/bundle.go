/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package cefore

import (
	"io"
	"os"

	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
)

// CopyConfigBundle creates the node's Cefore directory and copies every bundle
// file from the template directory, truncating existing files.
// Copying stops at the first template that cannot be read. Files copied before
// it are left in place. The paths written are returned in either case.
func CopyConfigBundle(l Layout, nodeID int) ([]string, error) {
	if err := checkNodeID(nodeID); err != nil {
		return nil, err
	}

	dir := l.ConfigDir(nodeID)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot create %s: %v", dir, err)
	}

	written := make([]string, 0, len(BundleFiles))
	for _, file := range BundleFiles {
		dst := l.NodePath(nodeID, file)
		if err := copyFile(l.TemplatePath(file), dst); err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	core.LogDebug("Bundle", "Copied ", len(written), " config files to ", dir)
	return written, nil
}

func copyFile(src string, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot open %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot open %s: %v", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot close %s: %v", dst, cerr)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot copy %s to %s: %v", src, dst, err)
	}
	return nil
}
