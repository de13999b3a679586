// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leanttro/leanttro-web/internal/utils"
	"github.com/leanttro/leanttro-web/models"
)

// ErrInvalidToken is returned for expired, tampered, or mis-scoped tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// ResetTokens mints and verifies password-reset tokens.
type ResetTokens struct {
	secret string
	ttl    time.Duration
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewResetTokens constructs a ResetTokens signing with secret. Tokens expire
// after ttl.
func NewResetTokens(secret string, ttl time.Duration) *ResetTokens {
	return &ResetTokens{
		secret: secret,
		ttl:    ttl,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// Issue mints a token for purpose and subject. Every token carries a fresh
// unique id in the "jti" claim.
func (t *ResetTokens) Issue(purpose, subject string) (models.ResetToken, error) {
	now := t.now()
	token := models.ResetToken{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        t.ids.Generate(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Purpose: purpose,
	}

	signed, err := utils.SignJWT(token, t.secret)
	if err != nil {
		return models.ResetToken{}, fmt.Errorf("sign reset token: %w", err)
	}

	token.SignedString = signed
	return token, nil
}

// Verify checks the signature, expiry and purpose of raw and returns the
// decoded token. Any failure is reported as [ErrInvalidToken].
func (t *ResetTokens) Verify(raw, purpose string) (models.ResetToken, error) {
	var token models.ResetToken
	err := utils.ParseJWT(raw, &token, t.secret,
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if token.Purpose != purpose || token.Subject == "" {
		return models.ResetToken{}, ErrInvalidToken
	}

	token.SignedString = raw
	return token, nil
}
