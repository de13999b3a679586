// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no HTTP
	// handler or listen address to build a server from.
	errNoServersAreCreated = errors.New("no servers are created")

	errNoServersToRun = errors.New("no servers to run")

	// errServerStopped wraps the cause when the HTTP server quits before a
	// shutdown was requested.
	errServerStopped = errors.New("server stopped unexpectedly")
)
