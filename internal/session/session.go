// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"slices"

	"github.com/leanttro/leanttro-web/models"
)

// Session is the per-visitor state carried in the session cookie.
type Session struct {
	MotoboyID string         `json:"mid,omitempty"`
	AdminOf   []string       `json:"adm,omitempty"`
	Flashes   []models.Flash `json:"fl,omitempty"`

	modified bool
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// IsCourier reports whether a courier is logged in.
func (s *Session) IsCourier() bool {
	return s.MotoboyID != ""
}

// LoginCourier marks the courier with the given id as logged in.
func (s *Session) LoginCourier(id string) {
	s.MotoboyID = id
	s.modified = true
}

// GrantAdmin records that the visitor is administrator of the store slug.
func (s *Session) GrantAdmin(slug string) {
	if slices.Contains(s.AdminOf, slug) {
		return
	}
	s.AdminOf = append(s.AdminOf, slug)
	s.modified = true
}

// IsAdminOf reports whether the visitor administers the store slug.
func (s *Session) IsAdminOf(slug string) bool {
	return slug != "" && slices.Contains(s.AdminOf, slug)
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, models.Flash{Category: category, Message: message})
	s.modified = true
}

// PopFlashes returns and removes all queued messages.
func (s *Session) PopFlashes() []models.Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	s.modified = true
	return flashes
}

// Clear drops everything, including queued messages.
func (s *Session) Clear() {
	*s = Session{modified: true}
}

// IsEmpty reports whether the session carries no state.
func (s *Session) IsEmpty() bool {
	return s.MotoboyID == "" && len(s.AdminOf) == 0 && len(s.Flashes) == 0
}

// Modified reports whether the session changed since it was loaded.
func (s *Session) Modified() bool {
	return s.modified
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithSession. A detached empty
// session is returned when none is present, so the result is never nil.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return New()
}
