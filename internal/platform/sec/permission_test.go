// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkdex/internal/platform/sec"
)

/*
TestPermission_Has verifies the subset semantics of the capability bitset.
*/
func TestPermission_Has(t *testing.T) {
	tests := []struct {
		name     string
		granted  sec.Permission
		required sec.Permission
		want     bool
	}{
		{"empty_requirement_always_satisfied", sec.PermissionNone, sec.PermissionNone, true},
		{"empty_requirement_with_grants", sec.CanChangeComicData, sec.PermissionNone, true},
		{"exact_match", sec.CanAddItemToComic, sec.CanAddItemToComic, true},
		{"superset_grant", sec.CanAddItemToComic | sec.CanChangeComicData, sec.CanAddItemToComic, true},
		{"missing_bit", sec.CanAddItemToComic, sec.CanRemoveItemFromComic, false},
		{"partial_overlap", sec.CanAddItemToComic, sec.CanAddItemToComic | sec.CanChangeItemData, false},
		{"nothing_granted", sec.PermissionNone, sec.CanAddImageToItem, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.granted.Has(tt.required))
		})
	}
}

/*
TestPermission_Missing checks that only the absent bits are reported.
*/
func TestPermission_Missing(t *testing.T) {
	granted := sec.CanAddItemToComic | sec.CanChangeComicData
	required := sec.CanAddItemToComic | sec.CanChangeItemData

	assert.Equal(t, sec.CanChangeItemData, granted.Missing(required))
	assert.Equal(t, sec.PermissionNone, granted.Missing(sec.CanChangeComicData))
}

/*
TestPermission_String covers the audit-text rendering of bitsets.
*/
func TestPermission_String(t *testing.T) {
	assert.Equal(t, "None", sec.PermissionNone.String())
	assert.Equal(t, "CanAddItemToComic", sec.CanAddItemToComic.String())
	assert.Equal(t,
		"CanRemoveItemFromComic, CanAddImageToItem",
		(sec.CanRemoveItemFromComic | sec.CanAddImageToItem).String(),
	)
}
