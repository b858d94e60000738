// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import "context"

// Repository abstracts news persistence.
type Repository interface {
	// GetByComicID returns the row, or dberr-mapped not-found.
	GetByComicID(ctx context.Context, comicID int) (*News, error)
	// Upsert inserts or replaces the row for its comic.
	Upsert(ctx context.Context, news *News) error
	// ComicExists reports whether a comic row backs the given id. News rows
	// reference the comic table, so the updater must not write for
	// unrecorded comics.
	ComicExists(ctx context.Context, comicID int) (bool, error)
}
