// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/leanttro/leanttro-web/models"
)

const minPasswordLength = 6

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)
	domainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)
)

// FormValidator implements the Validator interface for the forms of the
// courier and store flows: CourierSignupForm, LoginForm, ProfileForm,
// StoreSignupForm and PasswordForm, by value or by pointer.
type FormValidator struct{}

// NewFormValidator constructs a new FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches validation to the appropriate form-specific method
// based on the dynamic type of obj. When fields are omitted every rule of
// the form is checked. Returns ErrUnsupportedType for other types.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch form := obj.(type) {
	case models.CourierSignupForm:
		return v.validateCourierSignup(form, fields...)
	case *models.CourierSignupForm:
		return v.validateCourierSignup(*form, fields...)
	case models.LoginForm:
		return v.validateLogin(form, fields...)
	case *models.LoginForm:
		return v.validateLogin(*form, fields...)
	case models.ProfileForm:
		return v.validateProfile(form, fields...)
	case *models.ProfileForm:
		return v.validateProfile(*form, fields...)
	case models.StoreSignupForm:
		return v.validateStoreSignup(form, fields...)
	case *models.StoreSignupForm:
		return v.validateStoreSignup(*form, fields...)
	case models.PasswordForm:
		return v.validatePassword(form, fields...)
	case *models.PasswordForm:
		return v.validatePassword(*form, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateCourierSignup(form models.CourierSignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSlug, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSlug:
			err = CheckSlug(NormalizeSlug(form.Slug))
		case FieldEmail:
			err = checkEmail(form.Email)
		case FieldPassword:
			err = checkPassword(form.Senha)
		case FieldName:
			err = checkRequired(form.Nome)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			// only presence: old accounts may have weaker passwords
			if form.Senha == "" {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfile requires the login e-mail; the other fields are only
// checked when filled in, so partially completed profiles are accepted.
func (v *FormValidator) validateProfile(form models.ProfileForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldBirthDate, FieldDomain}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(form.Email); err != nil {
				return err
			}
		case FieldName:
			if err := checkRequired(form.Nome); err != nil {
				return err
			}
		case FieldBirthDate:
			if d := strings.TrimSpace(form.Nascimento); d != "" {
				if _, err := time.Parse(time.DateOnly, d); err != nil {
					return ErrInvalidBirthDate
				}
			}
		case FieldDomain:
			if d := strings.TrimSpace(form.DominioProprio); d != "" && !domainPattern.MatchString(d) {
				return ErrInvalidDomain
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateStoreSignup(form models.StoreSignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSlug, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkRequired(form.Nome)
		case FieldSlug:
			err = CheckSlug(NormalizeSlug(form.Slug))
		case FieldEmail:
			err = checkEmail(form.Email)
		case FieldPassword:
			err = checkPassword(form.Senha)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validatePassword(form models.PasswordForm, fields ...string) error {
	for _, f := range fields {
		if f != FieldPassword {
			return ErrUnknownField
		}
	}
	return checkPassword(form.Senha)
}

// NormalizeSlug lowercases and trims a slug the way it is stored.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// CheckSlug validates an already normalised slug.
func CheckSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	if IsReservedSlug(slug) {
		return ErrReservedSlug
	}
	return nil
}

// IsReservedSlug reports whether slug collides with an application route.
func IsReservedSlug(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}
	for _, r := range password {
		if unicode.IsLetter(r) {
			return nil
		}
	}
	return ErrWeakPassword
}

func checkRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyName
	}
	return nil
}
