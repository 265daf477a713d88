// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the configuration enables no
// transport at all, leaving the aggregate with nothing to run.
var errNoServersAreCreated = errors.New("no servers are created")
