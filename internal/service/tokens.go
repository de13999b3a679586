// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/leanttro/leanttro-web/models"

// ResetTokenIssuer mints and verifies password-reset tokens.
// *session.ResetTokens implements it.
type ResetTokenIssuer interface {
	Issue(purpose, subject string) (models.ResetToken, error)
	Verify(raw, purpose string) (models.ResetToken, error)
}
