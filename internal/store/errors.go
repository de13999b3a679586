package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMotoboyNotFound is returned when a lookup expected to match a
	// courier produces an empty result.
	ErrMotoboyNotFound = errors.New("motoboy was not found")

	// ErrLojaNotFound is returned when a lookup expected to match a store
	// produces an empty result.
	ErrLojaNotFound = errors.New("loja was not found")

	// ErrEmptyFile is returned when an upload carries no content.
	ErrEmptyFile = errors.New("empty file")
)

// Low-level backend operation errors. These wrap the adapter error so that
// callers can still match adapter sentinels.
var (
	// ErrQueryingBackend is returned when listing or fetching items fails.
	ErrQueryingBackend = errors.New("error querying backend")

	// ErrSavingItem is returned when creating or updating an item fails.
	ErrSavingItem = errors.New("error saving item")

	// ErrDecodingItem is returned when a backend item cannot be decoded into
	// its model type.
	ErrDecodingItem = errors.New("error decoding backend item")

	// ErrUploadingFile is returned when the backend rejects a file upload.
	ErrUploadingFile = errors.New("error uploading file")
)
