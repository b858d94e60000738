// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkdex/internal/platform/database/schema"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(context context.Context, tx pgx.Tx, entry *LogEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.LogEntry.Table,
		schema.LogEntry.UserToken, schema.LogEntry.CreatedAt, schema.LogEntry.Action,
		schema.LogEntry.ID,
	)

	err := tx.QueryRow(context, query, entry.UserToken, entry.CreatedAt, entry.Action).Scan(&entry.ID)
	if err != nil {
		return dberr.Wrap(err, "insert_log_entry")
	}

	return nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*LogEntry, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.LogEntry.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_log_entries")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.LogEntry.ID, schema.LogEntry.UserToken, schema.LogEntry.CreatedAt, schema.LogEntry.Action,
		schema.LogEntry.Table, schema.LogEntry.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_log_entries")
	}
	defer rows.Close()

	var entries []*LogEntry
	for rows.Next() {
		entry := &LogEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserToken, &entry.CreatedAt, &entry.Action); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_log_entry")
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}
