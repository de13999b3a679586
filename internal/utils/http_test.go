// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "forwarded single", forwarded: "203.0.113.7", remoteAddr: "10.0.0.1:80", want: "203.0.113.7"},
		{name: "forwarded chain takes first", forwarded: "203.0.113.7, 10.0.0.2", remoteAddr: "10.0.0.1:80", want: "203.0.113.7"},
		{name: "empty first forwarded entry", forwarded: " , 10.0.0.2", remoteAddr: "10.0.0.1:80", want: "10.0.0.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.9", want: "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeHost(t *testing.T) {
	tests := map[string]string{
		"SOS.Leanttro.com":     "sos.leanttro.com",
		"sos.leanttro.com:443": "sos.leanttro.com",
		"localhost:5000":       "localhost",
		"joao.com.br.":         "joao.com.br",
		"  127.0.0.1:8080 ":    "127.0.0.1",
		"[::1]:5000":           "::1",
		"":                     "",
	}

	for in, want := range tests {
		if got := NormalizeHost(in); got != want {
			t.Errorf("NormalizeHost(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestBaseURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://sos.leanttro.com/esqueceu-senha", nil)
	if got := BaseURL(r); got != "http://sos.leanttro.com" {
		t.Errorf("expected plain http base url, got %q", got)
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if got := BaseURL(r); got != "https://sos.leanttro.com" {
		t.Errorf("expected forwarded https base url, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "https://sos.leanttro.com/", nil)
	r.TLS = &tls.ConnectionState{}
	if got := BaseURL(r); got != "https://sos.leanttro.com" {
		t.Errorf("expected tls base url, got %q", got)
	}
}
