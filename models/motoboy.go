// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CollectionMotoboys is the backend collection holding courier profiles.
const CollectionMotoboys = "motoboys"

// StatusPublished is the status every record created by this front end gets.
const StatusPublished = "published"

// Motoboy is a courier emergency-info profile as stored by the backend.
//
// Field names follow the backend schema. FotoURL and Idade are derived by the
// service layer before rendering and are never sent back.
type Motoboy struct {
	ID     ID     `json:"id"`
	Status string `json:"status"`
	Slug   string `json:"slug"`

	NomeCompleto string `json:"nome_completo"`
	Email        string `json:"email"`
	// Senha is the password hash. It is only read for credential checks.
	Senha string `json:"senha"`

	DataNascimento    string `json:"data_nascimento"`
	TipoSanguineo     string `json:"tipo_sanguineo"`
	AlergiasCondicoes string `json:"alergias_condicoes"`
	PlanoSaude        string `json:"plano_saude"`

	ContatoNome      string `json:"contato_nome"`
	ContatoTelefone  string `json:"contato_telefone"`
	ContatoNome2     string `json:"contato_nome2"`
	ContatoTelefone2 string `json:"contato_telefone2"`

	DominioProprio string `json:"dominio_proprio"`
	Foto           string `json:"foto"`

	FotoURL string `json:"-"`
	Idade   string `json:"-"`
}

// NewMotoboy is the payload sent to create a courier profile.
type NewMotoboy struct {
	Status       string `json:"status"`
	Slug         string `json:"slug"`
	NomeCompleto string `json:"nome_completo"`
	Email        string `json:"email"`
	Senha        string `json:"senha"`
}

// MotoboyUpdate is the payload sent when a courier edits the profile panel.
// Every text field is sent so that clearing a field in the form clears it in
// the backend. Foto is only sent when a new photo was uploaded.
type MotoboyUpdate struct {
	NomeCompleto      string  `json:"nome_completo"`
	Email             string  `json:"email"`
	DataNascimento    *string `json:"data_nascimento"`
	TipoSanguineo     string  `json:"tipo_sanguineo"`
	AlergiasCondicoes string  `json:"alergias_condicoes"`
	ContatoNome       string  `json:"contato_nome"`
	ContatoTelefone   string  `json:"contato_telefone"`
	ContatoNome2      string  `json:"contato_nome2"`
	ContatoTelefone2  string  `json:"contato_telefone2"`
	PlanoSaude        string  `json:"plano_saude"`
	DominioProprio    string  `json:"dominio_proprio"`
	Foto              *string `json:"foto,omitempty"`
}

// MotoboyPasswordUpdate replaces the stored password hash.
type MotoboyPasswordUpdate struct {
	Senha string `json:"senha"`
}
