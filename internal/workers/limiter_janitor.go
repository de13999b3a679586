// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
)

// DefaultJanitorInterval is how often stale rate-limit state is evicted.
const DefaultJanitorInterval = time.Minute

// LimiterJanitor periodically evicts stale keys from in-memory rate limiters
// so that one-off visitors do not accumulate forever.
type LimiterJanitor struct {
	sweepers []ratelimit.Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewLimiterJanitor(interval time.Duration, logger *logger.Logger, sweepers ...ratelimit.Sweeper) *LimiterJanitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &LimiterJanitor{
		sweepers: sweepers,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (j *LimiterJanitor) Run(ctx context.Context) {
	if len(j.sweepers) == 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("limiter janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("limiter janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *LimiterJanitor) sweep() {
	now := j.now()
	removed := 0
	for _, s := range j.sweepers {
		removed += s.Sweep(now)
	}
	if removed > 0 {
		j.logger.Debug().Int("removed", removed).Msg("stale rate-limit keys evicted")
	}
}
