// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps a sliding log of event timestamps per key in process
// memory. It is the default when no Redis address is configured.
type MemoryLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	// maxPeriod is the longest period seen, used by Sweep.
	maxPeriod time.Duration
	now       func() time.Time
}

// NewMemoryLimiter returns an empty MemoryLimiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

// Allow implements [Limiter]. Timestamps older than period are pruned
// first; the event is denied when the remaining count already reached
// limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, period time.Duration) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if period > l.maxPeriod {
		l.maxPeriod = period
	}

	recent := prune(l.hits[key], now.Add(-period))
	if len(recent) >= limit {
		l.hits[key] = recent
		return false, nil
	}

	l.hits[key] = append(recent, now)
	return true, nil
}

// Sweep implements [Sweeper]. Keys whose newest event is older than the
// longest period ever requested are dropped.
func (l *MemoryLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.maxPeriod)
	removed := 0
	for key, times := range l.hits {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(l.hits, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// prune drops the leading timestamps not after cutoff. times is ordered.
func prune(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return times
	}
	return append(times[:0:0], times[i:]...)
}
