// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/inkdex/internal/navigation"
)

// CountedItem is an item together with how many comics it appears in.
type CountedItem struct {
	Item
	Count int `json:"count"`
}

// Repository abstracts item persistence. Mutating methods run inside the
// caller's transaction.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Item, error)
	// List returns every item with its occurrence count, most frequent first.
	List(ctx context.Context) ([]*CountedItem, error)
	// Update persists short name, name, and color.
	Update(ctx context.Context, tx pgx.Tx, item *Item) error
	// RelatedItems returns items of the given type sharing the most comics
	// with the given item, most shared first, capped at amount.
	RelatedItems(ctx context.Context, itemID int, itemType ItemType, amount int) ([]*CountedItem, error)

	ListImages(ctx context.Context, itemID int) ([]*Image, error)
	GetImageData(ctx context.Context, imageID int) ([]byte, error)
	InsertImage(ctx context.Context, tx pgx.Tx, itemID int, data []byte, hash uint32) (int, error)
}

// NavigationRepository is the slice of the comic store the item queries need:
// occurrence navigation for one item. Wired to the comic package's Postgres
// repository in main.
type NavigationRepository interface {
	ItemNavigation(ctx context.Context, itemID, referenceID int, exclude navigation.Exclusion) (navigation.Data, int, error)
}
