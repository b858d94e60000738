// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/inkdex/internal/platform/ctxutil"
	"github.com/taibuivan/inkdex/pkg/pagination"
)

// Logger appends audit entries. Mutation handlers call Log with their open
// transaction; the entry becomes durable only when that transaction commits.
type Logger struct {
	repository Repository
	clock      Clock
}

func NewLogger(repository Repository, clock Clock) *Logger {
	return &Logger{repository: repository, clock: clock}
}

// Log appends one action description attributed to the token.
func (logger *Logger) Log(ctx context.Context, tx pgx.Tx, token uuid.UUID, action string) error {
	entry := &LogEntry{
		UserToken: token,
		CreatedAt: logger.clock.Now().UTC(),
		Action:    action,
	}

	if err := logger.repository.Insert(ctx, tx, entry); err != nil {
		ctxutil.GetLogger(ctx).Error("failed to write audit entry",
			"action", action,
			"error", err,
		)
		return err
	}

	return nil
}

// GetLogs returns the trail newest first.
func (logger *Logger) GetLogs(ctx context.Context, params pagination.Params) ([]*LogEntry, pagination.Meta, error) {
	entries, total, err := logger.repository.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return entries, pagination.NewMeta(params.Page, params.Limit, total), nil
}
