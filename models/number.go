// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a form value that may arrive as a JSON number or as a string.
//
// Present is false for an absent field, null, an empty string and NaN.
// Valid is false when the field is present but does not parse as a number.
type Number struct {
	Value   float64
	Present bool
	Valid   bool
}

// NewNumber returns a present, valid Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Present: true, Valid: true}
}

// IsZero reports whether the field carries no usable value ("falsy").
func (n Number) IsZero() bool {
	return !n.Present || (n.Valid && n.Value == 0)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = NewNumber(f)
		return nil
	}

	n.Present = true
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// booleans, objects and arrays are present but not numbers
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		n.Present = false
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(f) {
		n.Present = false
		return nil
	}

	n.Value = f
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Present || !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}
