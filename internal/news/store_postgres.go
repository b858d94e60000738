// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) GetByComicID(context context.Context, comicID int) (*News, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.News.ComicID, schema.News.LastUpdated, schema.News.NewsText,
		schema.News.UpdateFactor, schema.News.IsLocked,
		schema.News.Table, schema.News.ComicID,
	)

	news := &News{}
	err := repository.db.QueryRow(context, query, comicID).Scan(
		&news.ComicID, &news.LastUpdated, &news.NewsText,
		&news.UpdateFactor, &news.IsLocked,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_news")
	}

	return news, nil
}

func (repository *PostgresRepository) ComicExists(context context.Context, comicID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Comic.Table, schema.Comic.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, comicID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "comic_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, news *News) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		schema.News.Table,
		schema.News.ComicID, schema.News.LastUpdated, schema.News.NewsText,
		schema.News.UpdateFactor, schema.News.IsLocked,
		schema.News.ComicID,
		schema.News.LastUpdated, schema.News.LastUpdated,
		schema.News.NewsText, schema.News.NewsText,
		schema.News.UpdateFactor, schema.News.UpdateFactor,
		schema.News.IsLocked, schema.News.IsLocked,
	)

	_, err := repository.db.Exec(context, query,
		news.ComicID, news.LastUpdated, news.NewsText, news.UpdateFactor, news.IsLocked,
	)
	if err != nil {
		return dberr.Wrap(err, "upsert_news")
	}

	return nil
}
