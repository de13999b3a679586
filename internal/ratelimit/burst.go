// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default global budget per client address: 300 requests per minute with
// bursts of 60.
const (
	DefaultBurstRate = rate.Limit(5)
	DefaultBurstSize = 60

	burstIdleTimeout = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// BurstGuard is a token-bucket limiter per client address that protects the
// backend from floods regardless of the route.
type BurstGuard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewBurstGuard returns a guard allowing r events per second with bursts of
// burst per client address.
func NewBurstGuard(r rate.Limit, burst int) *BurstGuard {
	return &BurstGuard{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the client address may issue another request.
func (g *BurstGuard) Allow(ip string) bool {
	now := g.now()

	g.mu.Lock()
	v, ok := g.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(g.rate, g.burst)}
		g.visitors[ip] = v
	}
	v.lastSeen = now
	g.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Sweep implements [Sweeper]. Addresses idle for longer than ten minutes
// are forgotten; their bucket would be full again anyway.
func (g *BurstGuard) Sweep(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for ip, v := range g.visitors {
		if now.Sub(v.lastSeen) > burstIdleTimeout {
			delete(g.visitors, ip)
			removed++
		}
	}
	return removed
}
