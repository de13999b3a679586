// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// CollectionLojas is the backend collection holding storefronts.
const CollectionLojas = "lojas"

// DefaultLayout is the section order used when a store has none configured.
const DefaultLayout = "banner,busca,banners_menores,categorias,produtos,novidades,blog"

// DefaultPrimaryColor is assigned to every new store.
const DefaultPrimaryColor = "#db2777"

// Loja is a storefront tenant.
type Loja struct {
	ID     ID     `json:"id"`
	Status string `json:"status"`
	Nome   string `json:"nome"`
	Slug   string `json:"slug"`

	EmailAdmin string `json:"email_admin"`
	SenhaAdmin string `json:"senha_admin"`
	ResetToken string `json:"reset_token"`

	WhatsappComercial string `json:"whatsapp_comercial"`
	CorPrimaria       string `json:"cor_primaria"`

	Logo             string `json:"logo"`
	BannerPrincipal1 string `json:"banner_principal_1"`
	BannerMenor1     string `json:"banner_menor_1"`
	BannerMenor2     string `json:"banner_menor_2"`
	LayoutOrdem      string `json:"layout_ordem"`

	LogoURL         string `json:"-"`
	Banner1URL      string `json:"-"`
	BannerMenor1URL string `json:"-"`
	BannerMenor2URL string `json:"-"`
	SlugURL         string `json:"-"`
}

// Layout returns the ordered storefront sections.
func (l Loja) Layout() []string {
	raw := l.LayoutOrdem
	if strings.TrimSpace(raw) == "" {
		raw = DefaultLayout
	}

	sections := make([]string, 0, 8)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}

	return sections
}

// NewLoja is the payload sent to create a store.
type NewLoja struct {
	Status            string `json:"status"`
	Nome              string `json:"nome"`
	Slug              string `json:"slug"`
	EmailAdmin        string `json:"email_admin"`
	SenhaAdmin        string `json:"senha_admin"`
	WhatsappComercial string `json:"whatsapp_comercial"`
	CorPrimaria       string `json:"cor_primaria"`
}

// LojaUpdate is a partial update of a store. Nil fields are left untouched.
type LojaUpdate struct {
	SenhaAdmin *string
	ResetToken *string
	// ClearResetToken sends reset_token as null and wins over ResetToken.
	ClearResetToken bool
}

// MarshalJSON implements [json.Marshaler] and emits only the fields being
// changed.
func (u LojaUpdate) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, 2)
	if u.SenhaAdmin != nil {
		fields["senha_admin"] = *u.SenhaAdmin
	}
	switch {
	case u.ClearResetToken:
		fields["reset_token"] = nil
	case u.ResetToken != nil:
		fields["reset_token"] = *u.ResetToken
	}
	return json.Marshal(fields)
}
