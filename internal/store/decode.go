// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leanttro/leanttro-web/internal/adapter"
)

// isMissingItem reports whether a by-id call hit an item that does not
// exist. Directus answers 403 instead of 404 for ids the token cannot see,
// which includes deleted ones.
func isMissingItem(err error) bool {
	return errors.Is(err, adapter.ErrNotFound) || errors.Is(err, adapter.ErrForbidden)
}

func decodeItem[T any](raw json.RawMessage) (T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("%w: %w", ErrDecodingItem, err)
	}
	return item, nil
}

func decodeItems[T any](raw []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		item, err := decodeItem[T](r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
