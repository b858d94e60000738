// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/inkdex/internal/item"
	"github.com/taibuivan/inkdex/internal/navigation"
)

// NavigatedItem is an item together with its occurrence navigation relative
// to a reference comic.
type NavigatedItem struct {
	item.Item
	Navigation navigation.Data `json:"navigation"`
	Count      int             `json:"count"`
}

// ListEntry is the shallow row returned by comic list queries.
type ListEntry struct {
	ID           int    `json:"comic"`
	Title        string `json:"title"`
	IsGuestComic bool   `json:"is_guest_comic"`
	IsNonCanon   bool   `json:"is_non_canon"`
}

// MissingField names the editor backfill queries: comics still lacking a
// given piece of data.
type MissingField string

const (
	MissingCast      MissingField = "cast"
	MissingLocation  MissingField = "location"
	MissingStoryline MissingField = "storyline"
	MissingTitle     MissingField = "title"
	MissingTagline   MissingField = "tagline"
)

// Repository abstracts comic persistence, including the occurrence join
// table, the item rows the comic mutations touch, and the navigation query
// families. Mutating methods run inside the caller's transaction.
type Repository interface {
	// GetComic returns the row, or dberr-mapped not-found.
	GetComic(ctx context.Context, id int) (*Comic, error)
	// GetOrCreateComic materializes a blank row when none exists.
	GetOrCreateComic(ctx context.Context, tx pgx.Tx, id int) (*Comic, error)
	UpdateComic(ctx context.Context, tx pgx.Tx, comic *Comic) error
	ListComics(ctx context.Context, exclude navigation.Exclusion) ([]*ListEntry, error)
	// ListExcludedComics returns the guest and non-canon comics.
	ListExcludedComics(ctx context.Context) ([]*ListEntry, error)

	GetItem(ctx context.Context, id int) (*item.Item, error)
	// CreateItem assigns the new item's id.
	CreateItem(ctx context.Context, tx pgx.Tx, newItem *item.Item) error

	OccurrenceExists(ctx context.Context, comicID, itemID int) (bool, error)
	InsertOccurrence(ctx context.Context, tx pgx.Tx, comicID, itemID int) error
	// DeleteOccurrence reports whether a row was actually removed.
	DeleteOccurrence(ctx context.Context, tx pgx.Tx, comicID, itemID int) (bool, error)
	// ItemIDsInComic returns the ids of items occurring in the comic.
	ItemIDsInComic(ctx context.Context, comicID int) ([]int, error)

	// ComicNavigation computes first/previous/next/last over the comic rows
	// themselves, under the exclusion filter.
	ComicNavigation(ctx context.Context, referenceID int, exclude navigation.Exclusion) (navigation.Data, error)
	// ItemNavigation computes one item's occurrence navigation and count.
	ItemNavigation(ctx context.Context, itemID, referenceID int, exclude navigation.Exclusion) (navigation.Data, int, error)
	// AllItemsNavigation computes every item's occurrence navigation and
	// count in one grouped query, most frequent first.
	AllItemsNavigation(ctx context.Context, referenceID int, exclude navigation.Exclusion) ([]*NavigatedItem, error)
	// MissingNavigation computes navigation over comics still lacking the
	// given field. No count: the size of the backfill set is not part of the
	// editor contract.
	MissingNavigation(ctx context.Context, field MissingField, referenceID int) (navigation.Data, error)
}
