// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
// is provided in the server configuration, so no transport handler can be
// initialized. Treated as a fatal misconfiguration at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
