// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a backend primary key. Collections may use integer or UUID keys, and
// relation fields may come back either as a bare key or as an expanded object
// carrying an "id" member. ID accepts all three shapes and keeps the key as
// its string form.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode string id: %w", err)
		}
		*id = ID(s)
		return nil
	case '{':
		var obj struct {
			ID ID `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("decode related object id: %w", err)
		}
		*id = obj.ID
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decode numeric id: %w", err)
		}
		*id = ID(n.String())
		return nil
	}
}

// String returns the key as used in backend URLs.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the key is empty.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Decimal is a price-like number. The backend serialises decimal columns as
// strings and float columns as numbers; both decode into Decimal.
type Decimal float64

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*d = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("decode decimal %q: %w", raw, err)
	}

	*d = Decimal(v)
	return nil
}

// BRL formats the value as a Brazilian real amount, e.g. "R$ 19,90".
func (d Decimal) BRL() string {
	s := strconv.FormatFloat(float64(d), 'f', 2, 64)
	return "R$ " + strings.Replace(s, ".", ",", 1)
}
