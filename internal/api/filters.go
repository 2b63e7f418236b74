// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "net/url"

// =============================================================================
// QUERY FILTERS
// =============================================================================

// Operator is a server-side filter operator. Filters encode as
// "field__op=value" query parameters, with "not_" prefixed to the
// operator for negation.
type Operator string

const (
	OpEquals     Operator = "equals"
	OpStartsWith Operator = "startswith"
	OpContains   Operator = "contains"
	OpGte        Operator = "gte"
	OpLte        Operator = "lte"
)

// Filter is one server-side list constraint.
type Filter struct {
	Field  string
	Op     Operator
	Negate bool
	Value  string
}

// Eq filters on exact field equality.
func Eq(field, value string) Filter {
	return Filter{Field: field, Op: OpEquals, Value: value}
}

// StartsWith filters on a field prefix; completion uses this for its
// starts-with candidate queries.
func StartsWith(field, value string) Filter {
	return Filter{Field: field, Op: OpStartsWith, Value: value}
}

// Contains filters on a field substring.
func Contains(field, value string) Filter {
	return Filter{Field: field, Op: OpContains, Value: value}
}

// encodeFilters renders filters as query parameters.
func encodeFilters(filters []Filter) url.Values {
	values := url.Values{}
	for _, f := range filters {
		op := string(f.Op)
		if f.Negate {
			op = "not_" + op
		}
		values.Add(f.Field+"__"+op, f.Value)
	}
	return values
}
