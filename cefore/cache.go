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
	"github.com/pkg/errors"
)

// CacheMarker replaces cefnetd.conf on caching nodes: content store on, log level 4.
const CacheMarker = "CS_MODE=1\nLOG_LEVEL=4\n"

// EnableCache overwrites the node's cefnetd.conf with CacheMarker.
// It does not merge with the copied template, so it must run after CopyConfigBundle.
func EnableCache(l Layout, nodeID int) (string, error) {
	if err := checkNodeID(nodeID); err != nil {
		return "", err
	}

	path := l.NodePath(nodeID, CefnetdConf)
	if err := os.WriteFile(path, []byte(CacheMarker), 0666); err != nil {
		return "", errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "cannot write %s: %v", path, err)
	}
	core.LogInfo("Cache", "Enabled content store on node-", nodeID)
	return path, nil
}
