// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter is a single equality condition, encoded as filter[Field][_eq]=Value.
type Filter struct {
	Field string
	Value string
}

// Query describes the list parameters understood by the backend.
type Query struct {
	Filters []Filter
	// Sort fields, "-" prefix for descending.
	Sort  []string
	Limit int
}

// NewQuery returns an empty Query.
func NewQuery() Query {
	return Query{}
}

// Eq adds an equality filter.
func (q Query) Eq(field, value string) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// SortBy appends sort fields.
func (q Query) SortBy(fields ...string) Query {
	q.Sort = append(append([]string(nil), q.Sort...), fields...)
	return q
}

// WithLimit sets the maximum number of returned items.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// Values encodes the query as URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	for _, f := range q.Filters {
		values.Add("filter["+f.Field+"][_eq]", f.Value)
	}
	if len(q.Sort) > 0 {
		values.Set("sort", strings.Join(q.Sort, ","))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}
