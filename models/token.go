// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A token minted for one purpose is never accepted for another.
const (
	PurposeCourierReset = "recuperar-senha"
	PurposeStoreReset   = "recuperar-senha-loja"
)

// ResetToken is a signed, expiring password-reset token.
//
// For couriers the subject is the account e-mail. For stores the subject is
// the store ID and the registered "jti" claim must match the one-time value
// persisted in the store's reset_token field.
type ResetToken struct {
	jwt.RegisteredClaims

	// Purpose scopes the token to a single flow.
	Purpose string `json:"purpose"`

	// SignedString is the compact form placed in reset links.
	SignedString string `json:"-"`
}

// String returns the compact serialization of the token.
func (t *ResetToken) String() string {
	return t.SignedString
}
