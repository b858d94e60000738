// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository abstracts audit trail persistence.
type Repository interface {
	// Insert appends an entry within the caller's transaction.
	Insert(ctx context.Context, tx pgx.Tx, entry *LogEntry) error
	// List returns entries newest first plus the total count.
	List(ctx context.Context, limit, offset int) ([]*LogEntry, int, error)
}
