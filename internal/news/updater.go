// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/inkdex/internal/platform/constants"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
)

// Fetcher retrieves the current news text for a comic from the upstream
// site. Implementations own the scraping details.
type Fetcher interface {
	FetchNews(ctx context.Context, comicID int) (string, error)
}

// Clock abstracts wall time so tests can pin the refresh window.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Updater tracks which comics have been read recently and refreshes their
// news rows in the background.
//
// CheckFor is called from the read path and must stay cheap; the actual
// refresh happens on the Run goroutine's tick.
type Updater struct {
	repository Repository
	fetcher    Fetcher
	clock      Clock
	logger     *slog.Logger

	mu      sync.Mutex
	pending map[int]struct{}
}

func NewUpdater(repository Repository, fetcher Fetcher, logger *slog.Logger) *Updater {
	return &Updater{
		repository: repository,
		fetcher:    fetcher,
		clock:      systemClock{},
		logger:     logger,
		pending:    make(map[int]struct{}),
	}
}

// WithClock replaces the wall clock. Test hook.
func (updater *Updater) WithClock(clock Clock) *Updater {
	updater.clock = clock
	return updater
}

// CheckFor marks a comic for a staleness check on the next tick.
func (updater *Updater) CheckFor(comicID int) {
	updater.mu.Lock()
	defer updater.mu.Unlock()
	updater.pending[comicID] = struct{}{}
}

// Drain removes and returns the pending comic ids.
func (updater *Updater) Drain() []int {
	updater.mu.Lock()
	defer updater.mu.Unlock()

	ids := make([]int, 0, len(updater.pending))
	for id := range updater.pending {
		ids = append(ids, id)
	}
	updater.pending = make(map[int]struct{})
	return ids
}

// Run drains the pending set on an interval until the context is canceled.
// Callers start it as a goroutine from main.
func (updater *Updater) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.NewsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updater.RefreshPending(ctx)
		}
	}
}

// RefreshPending processes one drained batch. Failures are logged and the
// comic is left for a later read to re-queue.
func (updater *Updater) RefreshPending(ctx context.Context) {
	for _, comicID := range updater.Drain() {
		if err := updater.refresh(ctx, comicID); err != nil {
			updater.logger.Warn("news refresh failed",
				"comic_id", comicID,
				"error", err,
			)
		}
	}
}

func (updater *Updater) refresh(ctx context.Context, comicID int) error {
	// Reads of unrecorded comics queue them too; without a comic row the
	// news foreign key would reject the write.
	exists, err := updater.repository.ComicExists(ctx, comicID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	now := updater.clock.Now().UTC()

	current, err := updater.repository.GetByComicID(ctx, comicID)
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		current = nil
	case err != nil:
		return err
	}

	if current != nil && !current.IsOutdated(now) {
		return nil
	}

	text, err := updater.fetcher.FetchNews(ctx, comicID)
	if err != nil {
		return err
	}

	if current == nil {
		return updater.repository.Upsert(ctx, &News{
			ComicID:      comicID,
			LastUpdated:  now,
			NewsText:     text,
			UpdateFactor: 1,
		})
	}

	// Unchanged text backs the row off one more factor; fresh text resets
	// the backoff.
	if text == current.NewsText {
		current.UpdateFactor++
	} else {
		current.NewsText = text
		current.UpdateFactor = 1
	}
	current.LastUpdated = now

	return updater.repository.Upsert(ctx, current)
}
