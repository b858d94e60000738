// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

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

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Item.ID, schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Item.Table, schema.Item.ID,
	)

	item := &Item{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.ShortName, &item.Name, &item.Type, &item.Color,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_item")
	}

	return item, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*CountedItem, error) {
	query := fmt.Sprintf(`
		SELECT i.%s, i.%s, i.%s, i.%s, i.%s, count(o.%s)
		FROM %s i
		LEFT JOIN %s o ON o.%s = i.%s
		GROUP BY i.%s
		ORDER BY count(o.%s) DESC, i.%s ASC
	`,
		schema.Item.ID, schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Occurrence.ComicID,
		schema.Item.Table,
		schema.Occurrence.Table, schema.Occurrence.ItemID, schema.Item.ID,
		schema.Item.ID,
		schema.Occurrence.ComicID, schema.Item.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_items")
	}
	defer rows.Close()

	return scanCountedItems(rows)
}

func (repository *PostgresRepository) Update(context context.Context, tx pgx.Tx, item *Item) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
	`,
		schema.Item.Table,
		schema.Item.ShortName, schema.Item.Name, schema.Item.Color,
		schema.Item.ID,
	)

	tag, err := tx.Exec(context, query, item.ID, item.ShortName, item.Name, item.Color)
	if err != nil {
		return dberr.Wrap(err, "update_item")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// RelatedItems counts, for every other item of the wanted type, the comics it
// shares with the given item. One grouped self-join, no per-item round trips.
func (repository *PostgresRepository) RelatedItems(context context.Context, itemID int, itemType ItemType, amount int) ([]*CountedItem, error) {
	query := fmt.Sprintf(`
		SELECT i.%s, i.%s, i.%s, i.%s, i.%s, count(*)
		FROM %s own
		JOIN %s other ON other.%s = own.%s AND other.%s <> own.%s
		JOIN %s i ON i.%s = other.%s
		WHERE own.%s = $1 AND i.%s = $2
		GROUP BY i.%s
		ORDER BY count(*) DESC, i.%s ASC
		LIMIT $3
	`,
		schema.Item.ID, schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Occurrence.Table,
		schema.Occurrence.Table, schema.Occurrence.ComicID, schema.Occurrence.ComicID,
		schema.Occurrence.ItemID, schema.Occurrence.ItemID,
		schema.Item.Table, schema.Item.ID, schema.Occurrence.ItemID,
		schema.Occurrence.ItemID, schema.Item.Type,
		schema.Item.ID,
		schema.Item.ID,
	)

	rows, err := repository.db.Query(context, query, itemID, itemType, amount)
	if err != nil {
		return nil, dberr.Wrap(err, "related_items")
	}
	defer rows.Close()

	return scanCountedItems(rows)
}

func (repository *PostgresRepository) ListImages(context context.Context, itemID int) ([]*Image, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.ItemImage.ID, schema.ItemImage.ItemID, schema.ItemImage.CRC32CHash,
		schema.ItemImage.Table, schema.ItemImage.ItemID, schema.ItemImage.ID,
	)

	rows, err := repository.db.Query(context, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_item_images")
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		image := &Image{}
		var hash int64
		if err := rows.Scan(&image.ID, &image.ItemID, &hash); err != nil {
			return nil, dberr.Wrap(err, "scan_item_image")
		}
		image.CRC32CHash = uint32(hash)
		images = append(images, image)
	}

	return images, nil
}

func (repository *PostgresRepository) GetImageData(context context.Context, imageID int) ([]byte, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.ItemImage.Image, schema.ItemImage.Table, schema.ItemImage.ID,
	)

	var data []byte
	if err := repository.db.QueryRow(context, query, imageID).Scan(&data); err != nil {
		return nil, dberr.Wrap(err, "get_image_data")
	}

	return data, nil
}

func (repository *PostgresRepository) InsertImage(context context.Context, tx pgx.Tx, itemID int, data []byte, hash uint32) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.ItemImage.Table,
		schema.ItemImage.ItemID, schema.ItemImage.Image, schema.ItemImage.CRC32CHash,
		schema.ItemImage.ID,
	)

	var imageID int
	// The hash column is a BIGINT; uint32 values overflow INTEGER.
	if err := tx.QueryRow(context, query, itemID, data, int64(hash)).Scan(&imageID); err != nil {
		return 0, dberr.Wrap(err, "insert_item_image")
	}

	return imageID, nil
}

func scanCountedItems(rows pgx.Rows) ([]*CountedItem, error) {
	var items []*CountedItem
	for rows.Next() {
		counted := &CountedItem{}
		if err := rows.Scan(
			&counted.ID, &counted.ShortName, &counted.Name, &counted.Type, &counted.Color,
			&counted.Count,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_counted_item")
		}
		items = append(items, counted)
	}

	return items, nil
}
