// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/news"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
)

// fakeNewsRepository treats a nil comics map as an archive containing every
// id, so only the skip test has to spell the archive out.
type fakeNewsRepository struct {
	rows   map[int]*news.News
	comics map[int]bool
}

func (repository *fakeNewsRepository) ComicExists(_ context.Context, comicID int) (bool, error) {
	if repository.comics == nil {
		return true, nil
	}
	return repository.comics[comicID], nil
}

func (repository *fakeNewsRepository) GetByComicID(_ context.Context, comicID int) (*news.News, error) {
	row, ok := repository.rows[comicID]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (repository *fakeNewsRepository) Upsert(_ context.Context, row *news.News) error {
	copied := *row
	repository.rows[row.ComicID] = &copied
	return nil
}

type fakeFetcher struct {
	text    string
	fetched []int
}

func (fetcher *fakeFetcher) FetchNews(_ context.Context, comicID int) (string, error) {
	fetcher.fetched = append(fetcher.fetched, comicID)
	return fetcher.text, nil
}

type fixedClock struct {
	at time.Time
}

func (clock fixedClock) Now() time.Time { return clock.at }

func newTestUpdater(repository *fakeNewsRepository, fetcher *fakeFetcher, at time.Time) *news.Updater {
	return news.NewUpdater(repository, fetcher, slog.Default()).WithClock(fixedClock{at: at})
}

/*
TestNews_IsOutdated verifies the staleness rule across the lock, the factor
cap, and the factor-scaled age window.
*/
func TestNews_IsOutdated(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		row      news.News
		outdated bool
	}{
		{
			name:     "fresh row",
			row:      news.News{LastUpdated: now.AddDate(0, 0, -2), UpdateFactor: 1},
			outdated: false,
		},
		{
			name:     "past the window",
			row:      news.News{LastUpdated: now.AddDate(0, 0, -32), UpdateFactor: 1},
			outdated: true,
		},
		{
			name:     "factor stretches the window",
			row:      news.News{LastUpdated: now.AddDate(0, 0, -40), UpdateFactor: 2},
			outdated: false,
		},
		{
			name:     "locked rows never go stale",
			row:      news.News{LastUpdated: now.AddDate(-1, 0, 0), UpdateFactor: 1, IsLocked: true},
			outdated: false,
		},
		{
			name:     "capped factor stops refreshes",
			row:      news.News{LastUpdated: now.AddDate(-10, 0, 0), UpdateFactor: 12},
			outdated: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.outdated, tc.row.IsOutdated(now))
		})
	}
}

/*
TestUpdater_PendingSet verifies that CheckFor deduplicates and Drain empties
the set.
*/
func TestUpdater_PendingSet(t *testing.T) {
	updater := newTestUpdater(&fakeNewsRepository{rows: map[int]*news.News{}}, &fakeFetcher{}, time.Now())

	updater.CheckFor(100)
	updater.CheckFor(200)
	updater.CheckFor(100)

	drained := updater.Drain()
	assert.ElementsMatch(t, []int{100, 200}, drained)
	assert.Empty(t, updater.Drain())
}

/*
TestUpdater_RefreshPending verifies the refresh transitions: new rows are
created at factor 1, unchanged text backs off, changed text resets.
*/
func TestUpdater_RefreshPending(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing row is created", func(t *testing.T) {
		repository := &fakeNewsRepository{rows: map[int]*news.News{}}
		fetcher := &fakeFetcher{text: "fresh blurb"}
		updater := newTestUpdater(repository, fetcher, now)

		updater.CheckFor(42)
		updater.RefreshPending(context.Background())

		row := repository.rows[42]
		require.NotNil(t, row)
		assert.Equal(t, "fresh blurb", row.NewsText)
		assert.Equal(t, 1.0, row.UpdateFactor)
		assert.True(t, row.LastUpdated.Equal(now))
	})

	t.Run("unchanged text backs off", func(t *testing.T) {
		repository := &fakeNewsRepository{rows: map[int]*news.News{
			42: {ComicID: 42, NewsText: "same blurb", LastUpdated: now.AddDate(0, 0, -60), UpdateFactor: 1},
		}}
		fetcher := &fakeFetcher{text: "same blurb"}
		updater := newTestUpdater(repository, fetcher, now)

		updater.CheckFor(42)
		updater.RefreshPending(context.Background())

		row := repository.rows[42]
		assert.Equal(t, 2.0, row.UpdateFactor)
		assert.True(t, row.LastUpdated.Equal(now))
	})

	t.Run("changed text resets the backoff", func(t *testing.T) {
		repository := &fakeNewsRepository{rows: map[int]*news.News{
			42: {ComicID: 42, NewsText: "old blurb", LastUpdated: now.AddDate(-1, 0, 0), UpdateFactor: 4},
		}}
		fetcher := &fakeFetcher{text: "new blurb"}
		updater := newTestUpdater(repository, fetcher, now)

		updater.CheckFor(42)
		updater.RefreshPending(context.Background())

		row := repository.rows[42]
		assert.Equal(t, "new blurb", row.NewsText)
		assert.Equal(t, 1.0, row.UpdateFactor)
	})

	t.Run("unrecorded comic is skipped", func(t *testing.T) {
		repository := &fakeNewsRepository{rows: map[int]*news.News{}, comics: map[int]bool{}}
		fetcher := &fakeFetcher{text: "never stored"}
		updater := newTestUpdater(repository, fetcher, now)

		updater.CheckFor(1000)
		updater.RefreshPending(context.Background())

		assert.Empty(t, fetcher.fetched)
		assert.Empty(t, repository.rows)
	})

	t.Run("fresh row is not fetched", func(t *testing.T) {
		repository := &fakeNewsRepository{rows: map[int]*news.News{
			42: {ComicID: 42, NewsText: "blurb", LastUpdated: now.AddDate(0, 0, -1), UpdateFactor: 1},
		}}
		fetcher := &fakeFetcher{text: "ignored"}
		updater := newTestUpdater(repository, fetcher, now)

		updater.CheckFor(42)
		updater.RefreshPending(context.Background())

		assert.Empty(t, fetcher.fetched)
		assert.Equal(t, "blurb", repository.rows[42].NewsText)
	})
}
