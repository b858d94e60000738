// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package item manages the recurring entities of the archive: cast members,
// locations, and storylines, together with their reference images.
package item

// ItemType classifies what kind of recurring entity an item is.
type ItemType string

const (
	TypeCast      ItemType = "cast"
	TypeLocation  ItemType = "location"
	TypeStoryline ItemType = "storyline"

	// TypeUnknown is the fallback for unrecognized input. Stored as-is so
	// bad historical data stays visible instead of being silently coerced.
	TypeUnknown ItemType = "unknown"
)

// ParseItemType maps free-form input to an [ItemType], falling back to
// [TypeUnknown].
func ParseItemType(raw string) ItemType {
	switch ItemType(raw) {
	case TypeCast, TypeLocation, TypeStoryline:
		return ItemType(raw)
	default:
		return TypeUnknown
	}
}

// Item is one recurring entity.
type Item struct {
	ID        int      `json:"id"`
	ShortName string   `json:"short_name"`
	Name      string   `json:"name"`
	Type      ItemType `json:"type"`
	Color     Color    `json:"color"`
}

// Image is a reference image attached to an item. The blob itself is only
// loaded by the dedicated image query.
type Image struct {
	ID         int    `json:"id"`
	ItemID     int    `json:"item_id"`
	CRC32CHash uint32 `json:"crc32c_hash"`
}
