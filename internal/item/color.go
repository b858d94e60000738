// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Color is an RGB color stored and transported as a six-digit hex string
// without a leading '#'.
type Color struct {
	R, G, B uint8
}

// DefaultColor is the mid-gray assigned to newly created items.
var DefaultColor = Color{R: 0x7F, G: 0x7F, B: 0x7F}

// ParseColor parses "RRGGBB" (case-insensitive, no '#').
func ParseColor(hex string) (Color, error) {
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", hex)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", hex, err)
	}

	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// Hex renders the canonical uppercase form, e.g. "7F7F7F".
func (color Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", color.R, color.G, color.B)
}

func (color Color) String() string { return color.Hex() }

// MarshalJSON encodes the color as its hex string.
func (color Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(color.Hex())
}

// UnmarshalJSON accepts a hex string.
func (color *Color) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseColor(raw)
	if err != nil {
		return err
	}
	*color = parsed
	return nil
}

// Value stores the color as its hex string.
func (color Color) Value() (driver.Value, error) {
	return color.Hex(), nil
}

// Scan reads the hex string column form.
func (color *Color) Scan(src any) error {
	switch value := src.(type) {
	case string:
		parsed, err := ParseColor(value)
		if err != nil {
			return err
		}
		*color = parsed
		return nil
	case []byte:
		return color.Scan(string(value))
	default:
		return fmt.Errorf("cannot scan %T into Color", src)
	}
}
