// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
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

func (repository *PostgresRepository) GetByID(context context.Context, id uuid.UUID) (*Token, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Token.ID, schema.Token.Identifier,
		schema.Token.CanAddItemToComic, schema.Token.CanRemoveItemFromComic,
		schema.Token.CanChangeComicData, schema.Token.CanAddImageToItem,
		schema.Token.CanRemoveImageFromItem, schema.Token.CanChangeItemData,
		schema.Token.Table, schema.Token.ID,
	)

	token := &Token{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&token.ID, &token.Identifier,
		&token.CanAddItemToComic, &token.CanRemoveItemFromComic,
		&token.CanChangeComicData, &token.CanAddImageToItem,
		&token.CanRemoveImageFromItem, &token.CanChangeItemData,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_token")
	}

	return token, nil
}
