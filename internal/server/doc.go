// Package server runs the HTTP front end.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT is received.
package server
