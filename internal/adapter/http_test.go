// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates a directusAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *directusAdapter {
	t.Helper()
	a, err := NewDirectusAdapter(config.Backend{
		URL:            serverURL,
		Token:          "static-token",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*directusAdapter)
}

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
}

// ── NewDirectusAdapter ───────────────────────────────────────────────────────

func TestNewDirectusAdapter_InvalidURL(t *testing.T) {
	_, err := NewDirectusAdapter(config.Backend{URL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://api2.leanttro.com/", want: "https://api2.leanttro.com"},
		{in: "api2.leanttro.com", want: "https://api2.leanttro.com"},
		{in: "http://localhost:8055", want: "http://localhost:8055"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items/motoboys", r.URL.Path)
		assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))
		assert.Equal(t, "joao", r.URL.Query().Get("filter[slug][_eq]"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		writeData(t, w, http.StatusOK, []map[string]any{{"id": 1, "slug": "joao"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.List(context.Background(), "motoboys", NewQuery().Eq("slug", "joao").WithLimit(1))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"id":1,"slug":"joao"}`, string(items[0]))
}

func TestList_EmptyAndNullData(t *testing.T) {
	for _, body := range []string{`{"data":[]}`, `{"data":null}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		a := newTestAdapter(t, srv.URL)
		items, err := a.List(context.Background(), "lojas", NewQuery())
		srv.Close()

		require.NoError(t, err, body)
		assert.Empty(t, items, body)
	}
}

func TestList_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.List(context.Background(), "lojas", NewQuery())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestList_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"errors":[{"message":"boom"}]}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.List(context.Background(), "motoboys", NewQuery())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestList_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.List(context.Background(), "motoboys", NewQuery())

	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/motoboys/42", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{"id": 42})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.Get(context.Background(), "motoboys", "42")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42}`, string(item))
}

func TestGet_NullDataIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "motoboys", "42")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestCreate_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items/lojas", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "minha-loja", body["slug"])

		writeData(t, w, http.StatusOK, map[string]any{"id": "uuid-1", "slug": "minha-loja"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.Create(context.Background(), "lojas", map[string]string{"slug": "minha-loja"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"uuid-1","slug":"minha-loja"}`, string(item))
}

func TestCreate_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.Create(context.Background(), "lojas", map[string]string{})

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestUpdate_Patch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/items/motoboys/7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new-hash", body["senha"])

		writeData(t, w, http.StatusOK, map[string]any{"id": 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Update(context.Background(), "motoboys", "7", map[string]string{"senha": "new-hash"})

	require.NoError(t, err)
}

func TestUpdate_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Update(context.Background(), "motoboys", "7", map[string]string{})

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── UploadFile ───────────────────────────────────────────────────────────────

func TestUploadFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/files", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "foto.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(content))

		writeData(t, w, http.StatusOK, map[string]any{"id": "file-123"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	id, err := a.UploadFile(context.Background(), "foto.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "file-123", id)
}

func TestUploadFile_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadFile(context.Background(), "foto.png", "", strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── AssetURL ─────────────────────────────────────────────────────────────────

func TestAssetURL(t *testing.T) {
	a := newTestAdapter(t, "https://api2.leanttro.com/")

	assert.Equal(t, "https://api2.leanttro.com/assets/abc-123", a.AssetURL("abc-123"))
	assert.Equal(t, "", a.AssetURL(""))
	assert.Equal(t, "", a.AssetURL("   "))
}

// ── Query ────────────────────────────────────────────────────────────────────

func TestQuery_Values(t *testing.T) {
	base := NewQuery().Eq("loja", "5")
	q := base.Eq("status", "published").SortBy("-date_created").WithLimit(3)

	v := q.Values()
	assert.Equal(t, "5", v.Get("filter[loja][_eq]"))
	assert.Equal(t, "published", v.Get("filter[status][_eq]"))
	assert.Equal(t, "-date_created", v.Get("sort"))
	assert.Equal(t, "3", v.Get("limit"))

	// derived queries never mutate their base
	assert.Len(t, base.Filters, 1)
	assert.Empty(t, NewQuery().Values())
}
