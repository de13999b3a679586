// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// CourierSignupForm is submitted on /cadastro.
type CourierSignupForm struct {
	Slug  string
	Nome  string
	Email string
	Senha string
}

// LoginForm is submitted on /login.
type LoginForm struct {
	Email string
	Senha string
}

// ProfileForm is submitted on the courier panel.
type ProfileForm struct {
	Nome           string
	Email          string
	Nascimento     string
	Sangue         string
	Alergias       string
	ContatoNome    string
	ContatoTel     string
	ContatoNome2   string
	ContatoTel2    string
	Plano          string
	DominioProprio string
}

// StoreSignupForm is submitted on /criar-loja.
type StoreSignupForm struct {
	Nome     string
	Slug     string
	Email    string
	Senha    string
	Whatsapp string
}

// FileUpload is an uploaded file on its way to the backend file store.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// PasswordForm is submitted when a new password is chosen from a reset link.
type PasswordForm struct {
	Senha string
}
