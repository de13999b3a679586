// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestBurstGuard_Allow(t *testing.T) {
	clock := newFakeClock()
	g := NewBurstGuard(rate.Limit(1), 3)
	g.now = clock.Now

	for i := 0; i < 3; i++ {
		assert.True(t, g.Allow("1.1.1.1"), "burst request %d", i+1)
	}
	assert.False(t, g.Allow("1.1.1.1"))
	assert.True(t, g.Allow("2.2.2.2"), "other addresses have their own bucket")

	clock.Advance(time.Second)
	assert.True(t, g.Allow("1.1.1.1"))
}

func TestBurstGuard_Sweep(t *testing.T) {
	clock := newFakeClock()
	g := NewBurstGuard(DefaultBurstRate, DefaultBurstSize)
	g.now = clock.Now

	g.Allow("idle")
	clock.Advance(9 * time.Minute)
	g.Allow("active")

	removed := g.Sweep(clock.Now().Add(2 * time.Minute))

	assert.Equal(t, 1, removed)
	_, idleKept := g.visitors["idle"]
	_, activeKept := g.visitors["active"]
	assert.False(t, idleKept)
	assert.True(t, activeKept)
}

func TestRule_Key(t *testing.T) {
	assert.Equal(t, "cad_203.0.113.7", CourierSignupRule.Key("203.0.113.7"))
	assert.Equal(t, "admin_doces_203.0.113.7", StoreAdminRule.Key("doces", "203.0.113.7"))
	assert.Equal(t, "reset", PasswordResetRule.Key())
}
