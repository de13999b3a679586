// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/utils"
)

// dataEnvelope is the success body shape returned by the backend:
// {"data": <item or list>}.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type directusAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewDirectusAdapter constructs a resty implementation of [BackendAdapter].
// It normalises and validates the base URL from cfg.URL and configures the
// underlying HTTP client with the base URL, the static bearer token and the
// request timeout.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewDirectusAdapter(cfg config.Backend, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Token, cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("creating backend adapter")
	return &directusAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [BackendAdapter]. It sends GET /items/{collection} with
// the encoded query and returns the items of the data array.
func (d *directusAdapter) List(ctx context.Context, collection string, query Query) ([]json.RawMessage, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query.Values()).
		Get(itemsPath(collection))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w: %w", collection, ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	data, err := decodeData(resp)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if isNull(data) {
		return items, nil
	}
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s list: %w", ErrMalformedResponse, collection, err)
	}

	return items, nil
}

// Get implements [BackendAdapter]. It sends GET /items/{collection}/{id}.
func (d *directusAdapter) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(itemPath(collection, id))
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w: %w", collection, ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	data, err := decodeData(resp)
	if err != nil {
		return nil, err
	}
	if isNull(data) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	return data, nil
}

// Create implements [BackendAdapter]. It sends POST /items/{collection}
// with payload as a JSON body.
func (d *directusAdapter) Create(ctx context.Context, collection string, payload any) (json.RawMessage, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(itemsPath(collection))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w: %w", collection, ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// 204 is returned when the backend is configured not to echo items
	if len(resp.Body()) == 0 {
		return nil, nil
	}

	return decodeData(resp)
}

// Update implements [BackendAdapter]. It sends PATCH
// /items/{collection}/{id} with payload as a JSON body.
func (d *directusAdapter) Update(ctx context.Context, collection, id string, payload any) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Patch(itemPath(collection, id))
	if err != nil {
		return fmt.Errorf("update %s request: %w: %w", collection, ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// UploadFile implements [BackendAdapter]. It sends a multipart POST /files
// with the content under the form field "file" and returns data.id.
func (d *directusAdapter) UploadFile(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetMultipartField("file", filename, contentType, content).
		Post("/files")
	if err != nil {
		return "", fmt.Errorf("upload file request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	data, err := decodeData(resp)
	if err != nil {
		return "", err
	}

	var file struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(data, &file); err != nil || file.ID == "" {
		return "", fmt.Errorf("%w: upload response without file id", ErrMalformedResponse)
	}

	return file.ID, nil
}

// AssetURL implements [BackendAdapter].
func (d *directusAdapter) AssetURL(fileID string) string {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return ""
	}
	return d.baseURL + "/assets/" + url.PathEscape(fileID)
}

func itemsPath(collection string) string {
	return "/items/" + url.PathEscape(collection)
}

func itemPath(collection, id string) string {
	return itemsPath(collection) + "/" + url.PathEscape(id)
}

func decodeData(resp *resty.Response) (json.RawMessage, error) {
	var envelope dataEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return envelope.Data, nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
