// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, applied with the lowest priority.
const (
	defaultVersion            = "dev"
	defaultLogLevel           = "info"
	defaultHTTPAddress        = "0.0.0.0:5000"
	defaultRequestTimeout     = 30 * time.Second
	defaultBackendURL         = "https://api2.leanttro.com"
	defaultBackendTimeout     = 10 * time.Second
	defaultSessionDuration    = 7 * 24 * time.Hour
	defaultResetTokenDuration = time.Hour
	defaultMailServer         = "smtp.gmail.com"
	defaultMailPort           = 465
)

// defaultSystemDomains are the hosts served as the application itself.
var defaultSystemDomains = []string{
	"motoboys.leanttro.com",
	"sos.leanttro.com",
	"localhost",
	"127.0.0.1",
}

func defaultConfig() *StructuredConfig {
	useSSL := true

	return &StructuredConfig{
		App: App{
			Version:            defaultVersion,
			LogLevel:           defaultLogLevel,
			SystemDomains:      append([]string(nil), defaultSystemDomains...),
			SessionDuration:    defaultSessionDuration,
			ResetTokenDuration: defaultResetTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Backend: Backend{
			URL:            defaultBackendURL,
			RequestTimeout: defaultBackendTimeout,
		},
		Mail: Mail{
			Server: defaultMailServer,
			Port:   defaultMailPort,
			UseSSL: &useSSL,
		},
	}
}
