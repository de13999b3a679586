// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/models"
)

// CourierPhotoPlaceholderURL is shown for couriers without a photo.
const CourierPhotoPlaceholderURL = "https://placehold.co/400x400?text=Sem+Foto"

const postDateFormat = "02/01/2006"

// backend timestamps, with or without zone
var postDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func decorateMotoboy(m *models.Motoboy, files store.FileStorage, now time.Time) {
	m.FotoURL = CourierPhotoPlaceholderURL
	if m.Foto != "" {
		m.FotoURL = files.URL(m.Foto)
	}
	m.Idade = age(m.DataNascimento, now)
}

func decorateLoja(l *models.Loja, files store.FileStorage) {
	l.LogoURL = files.URL(l.Logo)
	l.Banner1URL = files.URL(l.BannerPrincipal1)
	l.BannerMenor1URL = files.URL(l.BannerMenor1)
	l.BannerMenor2URL = files.URL(l.BannerMenor2)
	l.SlugURL = l.Slug
}

func decorateProduto(p *models.Produto, files store.FileStorage) {
	p.ImagemURL = models.ProductPlaceholderURL
	if p.FotoPrincipal != "" {
		p.ImagemURL = files.URL(p.FotoPrincipal)
	}
}

func decoratePost(p *models.Post, files store.FileStorage) {
	p.CapaURL = files.URL(p.Capa)
	p.Data = formatPostDate(p.DateCreated)
}

// age returns the age in whole years on now of someone born on birthDate
// (YYYY-MM-DD), or "" when the date is missing or malformed.
func age(birthDate string, now time.Time) string {
	born, err := time.Parse(time.DateOnly, strings.TrimSpace(birthDate))
	if err != nil {
		return ""
	}

	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return ""
	}
	return strconv.Itoa(years)
}

func formatPostDate(raw string) string {
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(postDateFormat)
		}
	}
	return ""
}

// normalizePhone strips the separators people type into phone fields.
func normalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}

// normalizeDomain turns whatever was pasted into the domain field into a
// bare lowercase host.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	return strings.TrimRight(domain, "/")
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
