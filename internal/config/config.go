// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the signing secret, the list of
	// system domains and session/reset token lifetimes.
	App App

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Backend holds the connection settings of the headless-CMS REST backend
	// where every courier, store and catalog record lives.
	Backend Backend `envPrefix:"DIRECTUS_"`

	// Mail holds SMTP settings used for password-reset e-mails.
	Mail Mail `envPrefix:"MAIL_"`

	// RateLimit selects the rate limiter backend.
	RateLimit RateLimit `envPrefix:"RATELIMIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey signs session cookies and password-reset tokens.
	// Must be kept confidential.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Version is reported by the /api/version endpoint when no build version
	// was injected at link time.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// SystemDomains are the application's own hosts. Any other host is
	// looked up as a courier's personal domain.
	// Env: SYSTEM_DOMAINS (comma separated)
	SystemDomains []string `env:"SYSTEM_DOMAINS"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PublicBaseURL is used to build absolute links in e-mails
	// (e.g. "https://sos.leanttro.com"). When empty the link is derived from
	// the incoming request.
	// Env: PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// SessionDuration is how long a session cookie stays valid.
	// Env: SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// ResetTokenDuration is how long a password-reset link stays valid.
	// Env: RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds the REST backend connection settings.
type Backend struct {
	// URL is the backend base URL (e.g. "https://api2.leanttro.com").
	// Env: DIRECTUS_URL
	URL string `env:"URL"`

	// Token is the static bearer token sent with every backend call.
	// Env: DIRECTUS_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every outbound backend call.
	// Env: DIRECTUS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds SMTP settings.
type Mail struct {
	// Env: MAIL_SERVER
	Server string `env:"SERVER"`
	// Env: MAIL_PORT
	Port int `env:"PORT"`
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`
	// UseSSL selects implicit TLS (SMTPS). When false STARTTLS is used.
	// A pointer so that an explicit "false" survives merging with defaults.
	// Env: MAIL_USE_SSL
	UseSSL *bool `env:"USE_SSL"`
	// From is the sender address. Defaults to Username.
	// Env: MAIL_FROM
	From string `env:"FROM"`
}

// Enabled reports whether enough settings are present to deliver mail.
func (m Mail) Enabled() bool {
	return m.Server != "" && m.Username != "" && m.Password != ""
}

// SSL reports whether implicit TLS should be used.
func (m Mail) SSL() bool {
	return m.UseSSL == nil || *m.UseSSL
}

// RateLimit selects the rate limiter backend. An empty RedisAddress keeps
// counters in process memory.
type RateLimit struct {
	// Env: RATELIMIT_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: RATELIMIT_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: RATELIMIT_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
