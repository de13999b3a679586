// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"testing"

	"github.com/leanttro/leanttro-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CourierLogin(t *testing.T) {
	s := New()
	assert.False(t, s.IsCourier())
	assert.False(t, s.Modified())

	s.LoginCourier("42")

	assert.True(t, s.IsCourier())
	assert.True(t, s.Modified())
}

func TestSession_GrantAdmin(t *testing.T) {
	s := New()

	s.GrantAdmin("doces")
	s.GrantAdmin("doces")

	assert.True(t, s.IsAdminOf("doces"))
	assert.False(t, s.IsAdminOf("outra"))
	assert.False(t, s.IsAdminOf(""))
	assert.Equal(t, []string{"doces"}, s.AdminOf)
}

func TestSession_Flashes(t *testing.T) {
	s := New()
	s.AddFlash(models.FlashError, "E-mail ou senha incorretos.")
	s.AddFlash(models.FlashSuccess, "ok")

	flashes := s.PopFlashes()

	require.Len(t, flashes, 2)
	assert.Equal(t, models.Flash{Category: models.FlashError, Message: "E-mail ou senha incorretos."}, flashes[0])
	assert.Nil(t, s.PopFlashes())
	assert.True(t, s.IsEmpty())
}

func TestSession_Clear(t *testing.T) {
	s := New()
	s.LoginCourier("1")
	s.GrantAdmin("doces")
	s.AddFlash(models.FlashSuccess, "x")

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.True(t, s.Modified())
}

func TestFromContext(t *testing.T) {
	detached := FromContext(context.Background())
	require.NotNil(t, detached)
	assert.True(t, detached.IsEmpty())

	s := New()
	s.LoginCourier("7")
	ctx := WithSession(context.Background(), s)

	assert.Same(t, s, FromContext(ctx))
}
