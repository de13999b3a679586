// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth string
		want  string
	}{
		{name: "birthday passed", birth: "1990-01-10", want: "36"},
		{name: "birthday today", birth: "1990-03-15", want: "36"},
		{name: "birthday tomorrow", birth: "1990-03-16", want: "35"},
		{name: "later month", birth: "2000-12-01", want: "25"},
		{name: "empty", birth: "", want: ""},
		{name: "brazilian format", birth: "15/03/1990", want: ""},
		{name: "future", birth: "2030-01-01", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, age(tt.birth, now))
		})
	}
}

func TestFormatPostDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "2026-02-07T13:45:12.123Z", want: "07/02/2026"},
		{raw: "2026-02-07T13:45:12Z", want: "07/02/2026"},
		{raw: "2026-02-07T13:45:12", want: "07/02/2026"},
		{raw: "2026-02-07 13:45:12", want: "07/02/2026"},
		{raw: "", want: ""},
		{raw: "ontem", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPostDate(tt.raw))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11987654321", normalizePhone("(11) 98765-4321"))
	assert.Equal(t, "+5511987654321", normalizePhone("+55 11 98765 4321"))
	assert.Equal(t, "", normalizePhone(""))
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://joao.com.br/", want: "joao.com.br"},
		{in: "http://Joao.COM//", want: "joao.com"},
		{in: "  HTTPS://sos.joao.dev ", want: "sos.joao.dev"},
		{in: "joao.com", want: "joao.com"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDomain(tt.in))
		})
	}
}
