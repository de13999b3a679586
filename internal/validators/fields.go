// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict Validate to a subset of a form.
const (
	// FieldSlug targets the public slug (sticker code or store link).
	FieldSlug = "slug"

	// FieldEmail targets the account e-mail.
	FieldEmail = "email"

	// FieldPassword targets a newly chosen password.
	FieldPassword = "senha"

	// FieldName targets the courier's full name or the store name.
	FieldName = "nome"

	// FieldBirthDate targets the courier's birth date (YYYY-MM-DD, optional).
	FieldBirthDate = "nascimento"

	// FieldDomain targets the courier's personal domain (optional).
	FieldDomain = "dominio_proprio"
)

// reservedSlugs collide with fixed routes or well-known files.
var reservedSlugs = map[string]struct{}{
	"static":          {},
	"favicon.ico":     {},
	"robots.txt":      {},
	"sitemap.xml":     {},
	"cadastro":        {},
	"login":           {},
	"logout":          {},
	"painel":          {},
	"esqueceu-senha":  {},
	"redefinir-senha": {},
	"criar-loja":      {},
	"api":             {},
	"healthz":         {},
}
