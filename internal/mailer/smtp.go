// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

type smtpMailer struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewMailer returns an SMTP mailer for cfg, or a [Nop] mailer when no SMTP
// credentials are configured.
func NewMailer(cfg config.Mail, log *logger.Logger) Mailer {
	if !cfg.Enabled() {
		log.Warn().Msg("SMTP credentials are not configured: e-mails will only be logged")
		return NewNop(log)
	}

	return &smtpMailer{cfg: cfg, logger: log}
}

// Send dials the SMTP server, delivers one message and disconnects.
// Implicit TLS is used when SSL is configured, mandatory STARTTLS otherwise.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.FromContext(ctx)

	msg, err := buildMessage(m.cfg.From, to, subject, htmlBody)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Server, m.clientOptions()...)
	if err != nil {
		log.Err(err).Str("func", "smtpMailer.Send").Msg("error creating SMTP client")
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "smtpMailer.Send").Str("server", m.cfg.Server).Msg("error sending e-mail")
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("e-mail sent")
	return nil
}

func (m *smtpMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(smtpTimeout),
	}
	if m.cfg.SSL() {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
}

func buildMessage(from, to, subject, htmlBody string) (*mail.Msg, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, ErrEmptyRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrBuildMessage, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrBuildMessage, err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	return msg, nil
}
