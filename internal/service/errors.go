package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidForm = errors.New("invalid form")

	ErrSlugTaken        = errors.New("slug is already in use")
	ErrEmailTaken       = errors.New("e-mail is already registered")
	ErrWrongCredentials = errors.New("wrong e-mail or password")
	ErrEmailNotFound    = errors.New("e-mail not found")
	ErrEmailMismatch    = errors.New("e-mail does not match the store")
	ErrDomainTaken      = errors.New("domain is already bound to another profile")

	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrMailDelivery      = errors.New("e-mail delivery failed")

	ErrProfileNotFound = errors.New("courier profile not found")
	ErrStoreNotFound   = errors.New("store not found")
)
