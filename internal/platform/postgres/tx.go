// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner opens transactions. *pgxpool.Pool satisfies it; services depend
// on this interface so tests can substitute a stub transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
