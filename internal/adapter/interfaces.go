// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the headless-CMS REST backend that
// owns every courier, store and catalog record.
//
// The primary abstraction is [BackendAdapter], which decouples the store
// layer from the wire protocol. The package ships a resty implementation
// ([NewDirectusAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines item and file operations against the backend.
// Every request carries the configured static bearer token.
type BackendAdapter interface {
	// List returns the raw items of collection matching query.
	// An empty result is not an error.
	List(ctx context.Context, collection string, query Query) ([]json.RawMessage, error)

	// Get returns a single item by primary key. Returns [ErrNotFound] or
	// [ErrForbidden] (wrapped) when the item does not exist.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// Create inserts payload into collection and returns the created item.
	Create(ctx context.Context, collection string, payload any) (json.RawMessage, error)

	// Update applies a partial update to the item identified by id.
	Update(ctx context.Context, collection, id string, payload any) error

	// UploadFile stores content as a backend file asset and returns its id.
	UploadFile(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// AssetURL returns the public URL of a file asset, or "" for an empty id.
	AssetURL(fileID string) string
}
