// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/leanttro/leanttro-web/internal/mock"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// CourierAuthValidationService
// ─────────────────────────────────────────────

func TestCourierAuthValidation_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCourierAuthService(ctrl)
	svc := NewCourierAuthValidationService(validators.NewFormValidator()).Wrap(inner)

	_, err := svc.Register(context.Background(), models.CourierSignupForm{Slug: "login", Email: "a@b.com", Senha: "abc123"})
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.ErrorIs(t, err, validators.ErrReservedSlug)

	_, err = svc.Login(context.Background(), models.LoginForm{Email: "nope", Senha: "x"})
	assert.ErrorIs(t, err, ErrWrongCredentials)

	inner.EXPECT().VerifyResetToken(gomock.Any(), "tok").Return("a@b.com", nil)
	err = svc.ResetPassword(context.Background(), "tok", models.PasswordForm{Senha: "123"})
	assert.ErrorIs(t, err, validators.ErrWeakPassword)
}

func TestCourierAuthValidation_ResetPassword_LinkBeforeForm(t *testing.T) {
	tests := []struct {
		name  string
		senha string
	}{
		{name: "weak password", senha: "123"},
		{name: "empty password", senha: ""},
		{name: "valid password", senha: "nova123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			inner := mock.NewMockCourierAuthService(ctrl)
			svc := NewCourierAuthValidationService(validators.NewFormValidator()).Wrap(inner)
			inner.EXPECT().VerifyResetToken(gomock.Any(), "expired").Return("", ErrInvalidResetToken)

			// Act
			err := svc.ResetPassword(context.Background(), "expired", models.PasswordForm{Senha: tt.senha})

			// Assert
			assert.ErrorIs(t, err, ErrInvalidResetToken)
			assert.NotErrorIs(t, err, ErrInvalidForm)
		})
	}
}

func TestCourierAuthValidation_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCourierAuthService(ctrl)
	svc := NewCourierAuthValidationService(validators.NewFormValidator()).Wrap(inner)
	ctx := context.Background()

	form := models.CourierSignupForm{Slug: "001", Email: "a@b.com", Senha: "abc123"}
	inner.EXPECT().Register(ctx, form).Return(models.Motoboy{ID: "1"}, nil)
	inner.EXPECT().Login(ctx, models.LoginForm{Email: "a@b.com", Senha: "x"}).Return(models.Motoboy{ID: "1"}, nil)
	inner.EXPECT().RequestPasswordReset(ctx, "a@b.com", testBaseURL).Return(nil)
	inner.EXPECT().VerifyResetToken(ctx, "tok").Return("a@b.com", nil).Times(2)
	inner.EXPECT().ResetPassword(ctx, "tok", models.PasswordForm{Senha: "nova123"}).Return(nil)

	_, err := svc.Register(ctx, form)
	require.NoError(t, err)
	_, err = svc.Login(ctx, models.LoginForm{Email: "a@b.com", Senha: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "a@b.com", testBaseURL))
	email, err := svc.VerifyResetToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
	require.NoError(t, svc.ResetPassword(ctx, "tok", models.PasswordForm{Senha: "nova123"}))
}

// ─────────────────────────────────────────────
// CourierProfileValidationService
// ─────────────────────────────────────────────

func TestCourierProfileValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCourierProfileService(ctrl)
	svc := NewCourierProfileValidationService(validators.NewFormValidator()).Wrap(inner)
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, "7", models.ProfileForm{Email: "a@b.com", Nascimento: "31/12/1990"}, nil)
	assert.ErrorIs(t, err, validators.ErrInvalidBirthDate)

	// the login e-mail cannot be blanked from the panel
	err = svc.UpdateProfile(ctx, "7", models.ProfileForm{Email: " "}, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	// pasted URLs are accepted since the domain is normalised before checking
	form := models.ProfileForm{Email: "a@b.com", DominioProprio: "https://joao.com.br/"}
	inner.EXPECT().UpdateProfile(ctx, "7", form, nil).Return(nil)
	require.NoError(t, svc.UpdateProfile(ctx, "7", form, nil))

	inner.EXPECT().Profile(ctx, "7").Return(models.Motoboy{ID: "7"}, nil)
	_, err = svc.Profile(ctx, "7")
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// StoreAdminValidationService
// ─────────────────────────────────────────────

func TestStoreAdminValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockStoreAdminService(ctrl)
	svc := NewStoreAdminValidationService(validators.NewFormValidator()).Wrap(inner)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.StoreSignupForm{Slug: "doces", Email: "a@b.com", Senha: "abc123"})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.Login(ctx, "doces", "")
	assert.ErrorIs(t, err, ErrWrongCredentials)

	inner.EXPECT().VerifyResetToken(ctx, "doces", "expired").Return(models.Loja{}, ErrInvalidResetToken)
	err = svc.ResetPassword(ctx, "doces", "expired", models.PasswordForm{Senha: "abc"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	assert.NotErrorIs(t, err, ErrInvalidForm)

	inner.EXPECT().Store(ctx, "doces").Return(models.Loja{Slug: "doces"}, nil)
	inner.EXPECT().Dashboard(ctx, "doces").Return(models.StoreDashboard{}, nil)
	inner.EXPECT().Login(ctx, "doces", "bolo2026").Return(models.Loja{}, nil)
	inner.EXPECT().RequestPasswordReset(ctx, "doces", "a@b.com", testBaseURL).Return(nil)
	inner.EXPECT().VerifyResetToken(ctx, "doces", "tok").Return(models.Loja{}, nil).Times(2)

	_, err = svc.Store(ctx, "doces")
	require.NoError(t, err)
	_, err = svc.Dashboard(ctx, "doces")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "doces", "bolo2026")
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "doces", "a@b.com", testBaseURL))
	_, err = svc.VerifyResetToken(ctx, "doces", "tok")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, "doces", "tok", models.PasswordForm{Senha: "abc"})
	assert.ErrorIs(t, err, ErrInvalidForm)
}
