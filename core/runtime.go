/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of cefsim.
var Version string

// BuildTime contains the timestamp of when the version of cefsim was built.
var BuildTime string

// StartTimestamp is the time the current command was started.
var StartTimestamp time.Time
