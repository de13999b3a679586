// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leanttro/leanttro-web/internal/utils"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

type sessionClaims struct {
	jwt.RegisteredClaims
	Data Session `json:"data"`
}

// Manager reads and writes the session cookie.
type Manager struct {
	secret   string
	duration time.Duration
}

// NewManager constructs a Manager signing cookies with secret. Cookies
// expire after duration.
func NewManager(secret string, duration time.Duration) *Manager {
	return &Manager{secret: secret, duration: duration}
}

// Load decodes the session cookie of r. A missing, tampered or expired
// cookie yields an empty session.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}

	var claims sessionClaims
	if err = utils.ParseJWT(cookie.Value, &claims, m.secret, jwt.WithExpirationRequired()); err != nil {
		return New()
	}

	s := claims.Data
	s.modified = false
	return &s
}

// Save writes s to the response as a signed cookie. An empty session
// removes the cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	if s.IsEmpty() {
		m.Clear(w, r)
		return nil
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
		Data: *s,
	}

	signed, err := utils.SignJWT(claims, m.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.duration.Seconds()),
		Expires:  now.Add(m.duration),
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
	})

	s.modified = false
	return nil
}

// Clear removes the session cookie from the client.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
