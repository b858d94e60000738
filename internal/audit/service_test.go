// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/audit"
	"github.com/taibuivan/inkdex/pkg/pagination"
)

type fakeAuditRepository struct {
	entries []*audit.LogEntry
}

func (repository *fakeAuditRepository) Insert(_ context.Context, _ pgx.Tx, entry *audit.LogEntry) error {
	entry.ID = int64(len(repository.entries) + 1)
	repository.entries = append(repository.entries, entry)
	return nil
}

// List mirrors the store contract: newest first by creation timestamp.
func (repository *fakeAuditRepository) List(_ context.Context, limit, offset int) ([]*audit.LogEntry, int, error) {
	total := len(repository.entries)
	sorted := make([]*audit.LogEntry, total)
	copy(sorted, repository.entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var page []*audit.LogEntry
	for i := offset; i < total && len(page) < limit; i++ {
		page = append(page, sorted[i])
	}
	return page, total, nil
}

type fixedClock struct {
	at time.Time
}

func (clock fixedClock) Now() time.Time { return clock.at }

// steppingClock advances one minute per reading so every entry gets a
// distinct timestamp.
type steppingClock struct {
	at time.Time
}

func (clock *steppingClock) Now() time.Time {
	clock.at = clock.at.Add(time.Minute)
	return clock.at
}

/*
TestLogger_Log verifies that entries carry the token, the action text, and a
UTC timestamp from the injected clock.
*/
func TestLogger_Log(t *testing.T) {
	repository := &fakeAuditRepository{}
	tokyoNoon := time.Date(2026, 3, 14, 12, 0, 0, 0, time.FixedZone("JST", 9*3600))
	logger := audit.NewLogger(repository, fixedClock{at: tokyoNoon})

	token := uuid.New()
	err := logger.Log(context.Background(), nil, token, "Added cast #7 (Marigold) to comic #1234")
	require.NoError(t, err)

	require.Len(t, repository.entries, 1)
	entry := repository.entries[0]
	assert.Equal(t, token, entry.UserToken)
	assert.Equal(t, "Added cast #7 (Marigold) to comic #1234", entry.Action)
	assert.Equal(t, time.UTC, entry.CreatedAt.Location(), "timestamps are normalized to UTC")
	assert.True(t, entry.CreatedAt.Equal(tokyoNoon))
}

/*
TestLogger_GetLogs verifies newest-first-by-timestamp ordering and
pagination metadata.
*/
func TestLogger_GetLogs(t *testing.T) {
	repository := &fakeAuditRepository{}
	logger := audit.NewLogger(repository, &steppingClock{at: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)})

	token := uuid.New()
	for _, action := range []string{"first", "second", "third"} {
		require.NoError(t, logger.Log(context.Background(), nil, token, action))
	}

	entries, meta, err := logger.GetLogs(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Action)
	assert.Equal(t, "second", entries[1].Action)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}
