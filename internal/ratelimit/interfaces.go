// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit provides best-effort request limiting for the sensitive
// form posts (signup, login, password reset) and a global per-IP burst guard.
package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/limiter_mock.go -package=mock

// Limiter decides whether another event for key fits into the budget of
// limit events per period.
type Limiter interface {
	// Allow records the event and reports whether it is within the budget.
	// A denied event is not recorded.
	Allow(ctx context.Context, key string, limit int, period time.Duration) (bool, error)
}

// Sweeper evicts state that can no longer influence a decision.
type Sweeper interface {
	// Sweep removes stale entries and returns how many were removed.
	Sweep(now time.Time) int
}
