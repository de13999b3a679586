// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/leanttro/leanttro-web/internal/logger"
)

// Nop logs messages instead of sending them.
type Nop struct {
	logger *logger.Logger
}

// NewNop returns a mailer that only logs.
func NewNop(log *logger.Logger) *Nop {
	return &Nop{logger: log}
}

// Send implements [Mailer].
func (n *Nop) Send(_ context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return ErrEmptyRecipient
	}

	n.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", htmlBody).
		Msg("e-mail not sent: mailer disabled")
	return nil
}
