// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkdex/internal/item"
	"github.com/taibuivan/inkdex/internal/navigation"
	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/constants"
	"github.com/taibuivan/inkdex/internal/platform/database/schema"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// exclusionClause compiles the navigation exclusion filter into a WHERE
// fragment against the aliased comic table.
func exclusionClause(exclude navigation.Exclusion, alias string) string {
	switch exclude {
	case navigation.ExcludeGuest:
		return fmt.Sprintf(" AND NOT %s.%s", alias, schema.Comic.IsGuestComic)
	case navigation.ExcludeNonCanon:
		return fmt.Sprintf(" AND NOT %s.%s", alias, schema.Comic.IsNonCanon)
	default:
		return ""
	}
}

// # Comic rows

func comicColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.Comic.ID, schema.Comic.Title, schema.Comic.Tagline,
		schema.Comic.PublishDate, schema.Comic.IsAccuratePublishDate,
		schema.Comic.IsGuestComic, schema.Comic.IsNonCanon,
		schema.Comic.HasNoCast, schema.Comic.HasNoLocation, schema.Comic.HasNoStoryline,
		schema.Comic.HasNoTitle, schema.Comic.HasNoTagline,
	)
}

func scanComic(row pgx.Row) (*Comic, error) {
	comic := &Comic{}
	err := row.Scan(
		&comic.ID, &comic.Title, &comic.Tagline,
		&comic.PublishDate, &comic.IsAccuratePublishDate,
		&comic.IsGuestComic, &comic.IsNonCanon,
		&comic.HasNoCast, &comic.HasNoLocation, &comic.HasNoStoryline,
		&comic.HasNoTitle, &comic.HasNoTagline,
	)
	if err != nil {
		return nil, err
	}
	return comic, nil
}

func (repository *PostgresRepository) GetComic(context context.Context, id int) (*Comic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		comicColumns(), schema.Comic.Table, schema.Comic.ID,
	)

	comic, err := scanComic(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_comic")
	}
	return comic, nil
}

func (repository *PostgresRepository) GetOrCreateComic(context context.Context, tx pgx.Tx, id int) (*Comic, error) {
	insert := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO NOTHING`,
		schema.Comic.Table, schema.Comic.ID, schema.Comic.ID,
	)
	if _, err := tx.Exec(context, insert, id); err != nil {
		return nil, dberr.Wrap(err, "create_comic")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		comicColumns(), schema.Comic.Table, schema.Comic.ID,
	)
	comic, err := scanComic(tx.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_comic")
	}
	return comic, nil
}

func (repository *PostgresRepository) UpdateComic(context context.Context, tx pgx.Tx, comic *Comic) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1
	`,
		schema.Comic.Table,
		schema.Comic.Title, schema.Comic.Tagline,
		schema.Comic.PublishDate, schema.Comic.IsAccuratePublishDate,
		schema.Comic.IsGuestComic, schema.Comic.IsNonCanon,
		schema.Comic.HasNoCast, schema.Comic.HasNoLocation, schema.Comic.HasNoStoryline,
		schema.Comic.HasNoTitle, schema.Comic.HasNoTagline,
		schema.Comic.ID,
	)

	tag, err := tx.Exec(context, query,
		comic.ID,
		comic.Title, comic.Tagline,
		comic.PublishDate, comic.IsAccuratePublishDate,
		comic.IsGuestComic, comic.IsNonCanon,
		comic.HasNoCast, comic.HasNoLocation, comic.HasNoStoryline,
		comic.HasNoTitle, comic.HasNoTagline,
	)
	if err != nil {
		return dberr.Wrap(err, "update_comic")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListComics(context context.Context, exclude navigation.Exclusion) ([]*ListEntry, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s
		FROM %s c
		WHERE TRUE%s
		ORDER BY c.%s ASC
	`,
		schema.Comic.ID, schema.Comic.Title, schema.Comic.IsGuestComic, schema.Comic.IsNonCanon,
		schema.Comic.Table,
		exclusionClause(exclude, "c"),
		schema.Comic.ID,
	)

	return repository.queryListEntries(context, query)
}

func (repository *PostgresRepository) ListExcludedComics(context context.Context) ([]*ListEntry, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s
		FROM %s c
		WHERE c.%s OR c.%s
		ORDER BY c.%s ASC
	`,
		schema.Comic.ID, schema.Comic.Title, schema.Comic.IsGuestComic, schema.Comic.IsNonCanon,
		schema.Comic.Table,
		schema.Comic.IsGuestComic, schema.Comic.IsNonCanon,
		schema.Comic.ID,
	)

	return repository.queryListEntries(context, query)
}

func (repository *PostgresRepository) queryListEntries(context context.Context, query string) ([]*ListEntry, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comics")
	}
	defer rows.Close()

	var entries []*ListEntry
	for rows.Next() {
		entry := &ListEntry{}
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.IsGuestComic, &entry.IsNonCanon); err != nil {
			return nil, dberr.Wrap(err, "scan_comic_entry")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// # Items touched by comic mutations

func (repository *PostgresRepository) GetItem(context context.Context, id int) (*item.Item, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Item.ID, schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Item.Table, schema.Item.ID,
	)

	found := &item.Item{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&found.ID, &found.ShortName, &found.Name, &found.Type, &found.Color,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_item")
	}
	return found, nil
}

func (repository *PostgresRepository) CreateItem(context context.Context, tx pgx.Tx, newItem *item.Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Item.Table,
		schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Item.ID,
	)

	err := tx.QueryRow(context, query,
		newItem.ShortName, newItem.Name, newItem.Type, newItem.Color,
	).Scan(&newItem.ID)
	if err != nil {
		return dberr.Wrap(err, "create_item")
	}
	return nil
}

// # Occurrences

func (repository *PostgresRepository) OccurrenceExists(context context.Context, comicID, itemID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.Occurrence.Table, schema.Occurrence.ComicID, schema.Occurrence.ItemID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, comicID, itemID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "occurrence_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) InsertOccurrence(context context.Context, tx pgx.Tx, comicID, itemID int) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.Occurrence.Table, schema.Occurrence.ComicID, schema.Occurrence.ItemID,
	)

	if _, err := tx.Exec(context, query, comicID, itemID); err != nil {
		return dberr.Wrap(err, "insert_occurrence")
	}
	return nil
}

func (repository *PostgresRepository) DeleteOccurrence(context context.Context, tx pgx.Tx, comicID, itemID int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Occurrence.Table, schema.Occurrence.ComicID, schema.Occurrence.ItemID,
	)

	tag, err := tx.Exec(context, query, comicID, itemID)
	if err != nil {
		return false, dberr.Wrap(err, "delete_occurrence")
	}
	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) ItemIDsInComic(context context.Context, comicID int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Occurrence.ItemID, schema.Occurrence.Table,
		schema.Occurrence.ComicID, schema.Occurrence.ItemID,
	)

	rows, err := repository.db.Query(context, query, comicID)
	if err != nil {
		return nil, dberr.Wrap(err, "items_in_comic")
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_item_id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// # Navigation queries
//
// All of these are single-round-trip aggregates over the indexed id columns:
// MIN/MAX give First/Last, and FILTER clauses with strict inequalities give
// Previous/Next relative to the reference id. Zero matching rows yield NULL
// aggregates, which scan into nil pointers.

func (repository *PostgresRepository) ComicNavigation(context context.Context, referenceID int, exclude navigation.Exclusion) (navigation.Data, error) {
	query := fmt.Sprintf(`
		SELECT MIN(c.%s),
			MAX(c.%s) FILTER (WHERE c.%s < $1),
			MIN(c.%s) FILTER (WHERE c.%s > $1),
			MAX(c.%s)
		FROM %s c
		WHERE TRUE%s
	`,
		schema.Comic.ID,
		schema.Comic.ID, schema.Comic.ID,
		schema.Comic.ID, schema.Comic.ID,
		schema.Comic.ID,
		schema.Comic.Table,
		exclusionClause(exclude, "c"),
	)

	var data navigation.Data
	err := repository.db.QueryRow(context, query, referenceID).Scan(
		&data.First, &data.Previous, &data.Next, &data.Last,
	)
	if err != nil {
		return navigation.Data{}, dberr.Wrap(err, "comic_navigation")
	}
	return data, nil
}

func (repository *PostgresRepository) ItemNavigation(context context.Context, itemID, referenceID int, exclude navigation.Exclusion) (navigation.Data, int, error) {
	query := fmt.Sprintf(`
		SELECT MIN(o.%s),
			MAX(o.%s) FILTER (WHERE o.%s < $2),
			MIN(o.%s) FILTER (WHERE o.%s > $2),
			MAX(o.%s),
			COUNT(*)
		FROM %s o
		JOIN %s c ON c.%s = o.%s
		WHERE o.%s = $1%s
	`,
		schema.Occurrence.ComicID,
		schema.Occurrence.ComicID, schema.Occurrence.ComicID,
		schema.Occurrence.ComicID, schema.Occurrence.ComicID,
		schema.Occurrence.ComicID,
		schema.Occurrence.Table,
		schema.Comic.Table, schema.Comic.ID, schema.Occurrence.ComicID,
		schema.Occurrence.ItemID,
		exclusionClause(exclude, "c"),
	)

	var data navigation.Data
	var count int
	err := repository.db.QueryRow(context, query, itemID, referenceID).Scan(
		&data.First, &data.Previous, &data.Next, &data.Last, &count,
	)
	if err != nil {
		return navigation.Data{}, 0, dberr.Wrap(err, "item_navigation")
	}
	return data, count, nil
}

func (repository *PostgresRepository) AllItemsNavigation(context context.Context, referenceID int, exclude navigation.Exclusion) ([]*NavigatedItem, error) {
	// One grouped pass over all items. The LEFT JOIN keeps zero-occurrence
	// items in the result with null navigation.
	query := fmt.Sprintf(`
		SELECT i.%s, i.%s, i.%s, i.%s, i.%s,
			MIN(oc.comic_id),
			MAX(oc.comic_id) FILTER (WHERE oc.comic_id < $1),
			MIN(oc.comic_id) FILTER (WHERE oc.comic_id > $1),
			MAX(oc.comic_id),
			COUNT(oc.comic_id)
		FROM %s i
		LEFT JOIN (
			SELECT o.%s AS item_id, o.%s AS comic_id
			FROM %s o
			JOIN %s c ON c.%s = o.%s
			WHERE TRUE%s
		) oc ON oc.item_id = i.%s
		GROUP BY i.%s
		ORDER BY COUNT(oc.comic_id) DESC, i.%s ASC
	`,
		schema.Item.ID, schema.Item.ShortName, schema.Item.Name, schema.Item.Type, schema.Item.Color,
		schema.Item.Table,
		schema.Occurrence.ItemID, schema.Occurrence.ComicID,
		schema.Occurrence.Table,
		schema.Comic.Table, schema.Comic.ID, schema.Occurrence.ComicID,
		exclusionClause(exclude, "c"),
		schema.Item.ID,
		schema.Item.ID,
		schema.Item.ID,
	)

	rows, err := repository.db.Query(context, query, referenceID)
	if err != nil {
		return nil, dberr.Wrap(err, "all_items_navigation")
	}
	defer rows.Close()

	var navigated []*NavigatedItem
	for rows.Next() {
		entry := &NavigatedItem{}
		if err := rows.Scan(
			&entry.ID, &entry.ShortName, &entry.Name, &entry.Type, &entry.Color,
			&entry.Navigation.First, &entry.Navigation.Previous,
			&entry.Navigation.Next, &entry.Navigation.Last,
			&entry.Count,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_navigated_item")
		}
		navigated = append(navigated, entry)
	}
	return navigated, nil
}

// missingPredicate yields the WHERE fragment selecting comics that still
// lack the given field, against comic alias "c".
func missingPredicate(field MissingField) (string, error) {
	itemAbsence := func(itemType string, flagColumn string) string {
		return fmt.Sprintf(
			`NOT c.%s AND NOT EXISTS (
				SELECT 1 FROM %s o JOIN %s i ON i.%s = o.%s
				WHERE o.%s = c.%s AND i.%s = '%s'
			)`,
			flagColumn,
			schema.Occurrence.Table, schema.Item.Table, schema.Item.ID, schema.Occurrence.ItemID,
			schema.Occurrence.ComicID, schema.Comic.ID, schema.Item.Type, itemType,
		)
	}

	switch field {
	case MissingTitle:
		return fmt.Sprintf(`c.%s = '' AND NOT c.%s`,
			schema.Comic.Title, schema.Comic.HasNoTitle), nil
	case MissingTagline:
		// Taglines only became part of the archive after a fixed comic id.
		return fmt.Sprintf(`(c.%s IS NULL OR c.%s = '') AND NOT c.%s AND c.%s > %d`,
			schema.Comic.Tagline, schema.Comic.Tagline, schema.Comic.HasNoTagline,
			schema.Comic.ID, constants.TaglineCutoffComicID), nil
	case MissingCast:
		return itemAbsence(string(item.TypeCast), schema.Comic.HasNoCast), nil
	case MissingLocation:
		return itemAbsence(string(item.TypeLocation), schema.Comic.HasNoLocation), nil
	case MissingStoryline:
		return itemAbsence(string(item.TypeStoryline), schema.Comic.HasNoStoryline), nil
	default:
		return "", apperr.Invariant("unrecognized missing-field query: " + string(field))
	}
}

func (repository *PostgresRepository) MissingNavigation(context context.Context, field MissingField, referenceID int) (navigation.Data, error) {
	predicate, err := missingPredicate(field)
	if err != nil {
		return navigation.Data{}, err
	}

	query := fmt.Sprintf(`
		SELECT MIN(c.%s),
			MAX(c.%s) FILTER (WHERE c.%s < $1),
			MIN(c.%s) FILTER (WHERE c.%s > $1),
			MAX(c.%s)
		FROM %s c
		WHERE %s
	`,
		schema.Comic.ID,
		schema.Comic.ID, schema.Comic.ID,
		schema.Comic.ID, schema.Comic.ID,
		schema.Comic.ID,
		schema.Comic.Table,
		predicate,
	)

	var data navigation.Data
	err = repository.db.QueryRow(context, query, referenceID).Scan(
		&data.First, &data.Previous, &data.Next, &data.Last,
	)
	if err != nil {
		return navigation.Data{}, dberr.Wrap(err, "missing_navigation")
	}
	return data, nil
}
