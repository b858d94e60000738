// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "newItemName", "Bob", false},
		{"empty_string", "newItemName", "", true},
		{"whitespace_only", "newItemName", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_HexColor checks the RGB hex triplet rule used by item colors.
*/
func TestValidator_HexColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"default_gray", "7F7F7F", true},
		{"lowercase", "aabbcc", true},
		{"with_hash", "#7F7F7F", false},
		{"too_short", "7F7F7", false},
		{"non_hex", "GGGGGG", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.HexColor("color", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chaining verifies that multiple failures accumulate into a
single VALIDATION_ERROR with one detail per failed rule.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Min("comicId", 0, 1).
		Required("newItemType", "").
		OneOf("exclude", "whatever", "guest", "non-canon").
		Err()

	require.NotNil(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_EmptyAndRange covers the mode-dependent rules used by
AddItemToComic (fields that must be empty unless the create-new sentinel is set).
*/
func TestValidator_EmptyAndRange(t *testing.T) {
	v := &validate.Validator{}
	assert.Nil(t, v.Empty("newItemName", "").Range("amount", 10, 1, 50).Err())

	v = &validate.Validator{}
	err := v.Empty("newItemName", "Bob").Range("amount", 99, 1, 50).Err()
	require.NotNil(t, err)
	assert.Len(t, apperr.As(err).Details, 2)
}
