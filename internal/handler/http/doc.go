// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page handlers, and middleware for the courier
// SOS profiles and the storefronts. Cross-cutting concerns such as request
// tracing, access logging, scraper blocking, response compression, rate
// limiting, host-based tenant resolution, and cookie sessions are handled in
// this package before requests are delegated to the service layer. Pages are
// rendered from templates embedded in the binary.
package http
