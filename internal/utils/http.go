package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the address of the client that issued r.
//
// The first entry of the X-Forwarded-For header wins, since the application
// runs behind a reverse proxy. Otherwise the host part of r.RemoteAddr is
// returned.
//
// Example usage:
//
//	key := "login_" + utils.ClientIP(r)
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NormalizeHost lowercases host and strips an optional port and trailing dot.
//
// Example:
//
//	NormalizeHost("SOS.Leanttro.com:443") // "sos.leanttro.com"
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimPrefix(strings.TrimSuffix(host, "]"), "[")
	return strings.TrimSuffix(host, ".")
}

// BaseURL returns scheme://host of the incoming request, honouring
// X-Forwarded-Proto.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme, _, _ = strings.Cut(proto, ",")
		scheme = strings.TrimSpace(scheme)
	}
	return scheme + "://" + r.Host
}
