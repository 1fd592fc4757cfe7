/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package cefore

import (
	"path/filepath"
	"strconv"

	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
)

// Names of the files making up a Cefore config bundle.
const (
	CefnetdConf       = "cefnetd.conf"
	CefnetdFib        = "cefnetd.fib"
	CsmgrdConf        = "csmgrd.conf"
	CcorePublicKey    = "ccore-public-key"
	DefaultPublicKey  = "default-public-key"
	CefnetdKey        = "cefnetd.key"
	DefaultPrivateKey = "default-private-key"
	PluginConf        = "plugin.conf"
)

// BundleFiles lists the bundle files in the order they are copied.
var BundleFiles = []string{
	CefnetdConf,
	CefnetdFib,
	CsmgrdConf,
	CcorePublicKey,
	DefaultPublicKey,
	CefnetdKey,
	DefaultPrivateKey,
	PluginConf,
}

const (
	nodeDirPrefix = "files-"
	ceforeSubdir  = "usr/local/cefore"
)

// Layout locates template files and per-node output trees.
// DCE maps files-<nodeId> to the root filesystem of each simulated node.
type Layout struct {
	WorkDir     string
	TemplateDir string
}

// NewLayout returns the layout described by the configuration.
func NewLayout(config *core.Config) Layout {
	return Layout{
		WorkDir:     config.Scenario.WorkDir,
		TemplateDir: config.Scenario.TemplateDir,
	}
}

// NodeDir returns the root of the node's filesystem tree.
func (l Layout) NodeDir(nodeID int) string {
	return filepath.Join(l.WorkDir, nodeDirPrefix+strconv.Itoa(nodeID))
}

// ConfigDir returns the node's Cefore configuration directory.
func (l Layout) ConfigDir(nodeID int) string {
	return filepath.Join(l.NodeDir(nodeID), ceforeSubdir)
}

// NodePath returns the path of a bundle file for the node.
func (l Layout) NodePath(nodeID int, file string) string {
	return filepath.Join(l.ConfigDir(nodeID), file)
}

// TemplatePath returns the path of a template file.
func (l Layout) TemplatePath(file string) string {
	return filepath.Join(l.TemplateDir, file)
}

func checkNodeID(nodeID int) error {
	if nodeID < 0 {
		return errors.Wrapf(core.ErrMissingTemplateOrOutputPath, "no node directory for node id %d", nodeID)
	}
	return nil
}
