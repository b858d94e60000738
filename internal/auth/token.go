// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the Token Authority: resolving opaque editor
// tokens to validity and a granted permission bitset.
//
// # Lifecycle
//
// Tokens are provisioned out-of-band by an administrator and are read-only
// to this service. There is no expiry, rotation, or revocation beyond
// deleting the row.
package auth

import (
	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/platform/sec"
)

// Token is an opaque bearer credential with per-capability boolean grants.
type Token struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier"`

	CanAddItemToComic      bool `json:"can_add_item_to_comic"`
	CanRemoveItemFromComic bool `json:"can_remove_item_from_comic"`
	CanChangeComicData     bool `json:"can_change_comic_data"`
	CanAddImageToItem      bool `json:"can_add_image_to_item"`
	CanRemoveImageFromItem bool `json:"can_remove_image_from_item"`
	CanChangeItemData      bool `json:"can_change_item_data"`
}

// Permissions assembles the grant columns into a [sec.Permission] bitset.
func (t *Token) Permissions() sec.Permission {
	var granted sec.Permission
	if t.CanAddItemToComic {
		granted |= sec.CanAddItemToComic
	}
	if t.CanRemoveItemFromComic {
		granted |= sec.CanRemoveItemFromComic
	}
	if t.CanChangeComicData {
		granted |= sec.CanChangeComicData
	}
	if t.CanAddImageToItem {
		granted |= sec.CanAddImageToItem
	}
	if t.CanRemoveImageFromItem {
		granted |= sec.CanRemoveImageFromItem
	}
	if t.CanChangeItemData {
		granted |= sec.CanChangeItemData
	}
	return granted
}
