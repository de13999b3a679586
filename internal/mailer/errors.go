package mailer

import "errors"

var (
	ErrEmptyRecipient = errors.New("empty recipient")
	ErrBuildMessage   = errors.New("error building e-mail message")
	ErrDeliver        = errors.New("error delivering e-mail")
)
