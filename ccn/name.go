/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ccn

import (
	"strings"

	"github.com/pkg/errors"
)

// Schemes accepted in content names.
const (
	SchemeCCN  = "ccn"
	SchemeCCNx = "ccnx"
)

// ErrInvalidName is returned when a content name cannot be parsed.
var ErrInvalidName = errors.New("invalid content name")

// Name is a hierarchical content name such as ccn:/streaming/test.
type Name struct {
	scheme     string
	components []string
}

// NewName returns a name with the ccn scheme and the given components.
func NewName(components ...string) Name {
	return Name{scheme: SchemeCCN, components: append([]string(nil), components...)}
}

// ParseName decodes a name from its URI representation.
// The scheme must be ccn or ccnx, and empty components are rejected except for a single trailing slash.
func ParseName(str string) (Name, error) {
	scheme, path, ok := strings.Cut(str, ":")
	if !ok {
		return Name{}, errors.Wrapf(ErrInvalidName, "%q has no scheme", str)
	}
	if scheme != SchemeCCN && scheme != SchemeCCNx {
		return Name{}, errors.Wrapf(ErrInvalidName, "%q has unsupported scheme %q", str, scheme)
	}
	if !strings.HasPrefix(path, "/") {
		return Name{}, errors.Wrapf(ErrInvalidName, "%q is not absolute", str)
	}

	n := Name{scheme: scheme}
	path = strings.TrimSuffix(path[1:], "/")
	if path == "" {
		return n, nil
	}
	for _, component := range strings.Split(path, "/") {
		if component == "" {
			return Name{}, errors.Wrapf(ErrInvalidName, "%q contains an empty component", str)
		}
		if strings.ContainsAny(component, " \t\r\n") {
			return Name{}, errors.Wrapf(ErrInvalidName, "%q contains whitespace", str)
		}
		n.components = append(n.components, component)
	}
	return n, nil
}

// Scheme returns the URI scheme of the name.
func (n Name) Scheme() string {
	if n.scheme == "" {
		return SchemeCCN
	}
	return n.scheme
}

// Size returns the number of components in the name.
func (n Name) Size() int {
	return len(n.components)
}

// At returns the component at the given index. Negative indices count from the end.
func (n Name) At(index int) string {
	if index < 0 {
		index += len(n.components)
	}
	if index < 0 || index >= len(n.components) {
		return ""
	}
	return n.components[index]
}

// Append returns a copy of the name with the components appended.
func (n Name) Append(components ...string) Name {
	out := Name{scheme: n.scheme, components: make([]string, 0, len(n.components)+len(components))}
	out.components = append(out.components, n.components...)
	out.components = append(out.components, components...)
	return out
}

// Equals returns whether the two names have the same components. Schemes are not compared.
func (n Name) Equals(other Name) bool {
	if len(n.components) != len(other.components) {
		return false
	}
	for i := range n.components {
		if n.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf returns whether every component of n matches the start of other.
func (n Name) IsPrefixOf(other Name) bool {
	if len(n.components) > len(other.components) {
		return false
	}
	for i := range n.components {
		if n.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

func (n Name) String() string {
	return n.Scheme() + ":/" + strings.Join(n.components, "/")
}
