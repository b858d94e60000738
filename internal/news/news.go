// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package news keeps the per-comic news blurb fresh.
//
// Reads of a comic record the comic id as pending; a background updater
// drains the pending set on an interval and refreshes rows whose backoff
// window has elapsed. Rows back off exponentially via an update factor and
// stop refreshing entirely once the factor reaches its cap or the row is
// locked by an editor.
package news

import (
	"time"

	"github.com/taibuivan/inkdex/internal/platform/constants"
)

// News is the blurb attached to one comic.
type News struct {
	ComicID      int       `json:"comic_id"`
	LastUpdated  time.Time `json:"last_updated"`
	NewsText     string    `json:"news_text"`
	UpdateFactor float64   `json:"update_factor"`
	IsLocked     bool      `json:"is_locked"`
}

// baseRefreshAge is the refresh window at factor 1. Each bump of the update
// factor stretches the window by another multiple of it.
const baseRefreshAge = 31 * 24 * time.Hour

// IsOutdated reports whether the row is due for a refresh at the given time.
// Locked rows and rows at the factor cap never go stale.
func (news *News) IsOutdated(now time.Time) bool {
	if news.IsLocked {
		return false
	}
	if news.UpdateFactor >= constants.NewsMaxUpdateFactor {
		return false
	}

	age := now.Sub(news.LastUpdated)
	return age > time.Duration(news.UpdateFactor*float64(baseRefreshAge))
}
