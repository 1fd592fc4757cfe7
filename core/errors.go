/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "errors"

// Error definitions
var (
	// ErrMissingTemplateOrOutputPath is returned when a template cannot be read or an output path cannot be written.
	ErrMissingTemplateOrOutputPath = errors.New("missing template or output path")
	// ErrUnrecognizedRole is returned when a node id does not map to a role that has a FIB.
	ErrUnrecognizedRole = errors.New("unrecognized node role")
	// ErrInvalidConfig is returned by Config.Parse.
	ErrInvalidConfig = errors.New("invalid configuration")
)
