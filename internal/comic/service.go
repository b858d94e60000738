// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/audit"
	"github.com/taibuivan/inkdex/internal/item"
	"github.com/taibuivan/inkdex/internal/navigation"
	"github.com/taibuivan/inkdex/internal/news"
	"github.com/taibuivan/inkdex/internal/pipeline"
	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
	"github.com/taibuivan/inkdex/internal/platform/postgres"
	"github.com/taibuivan/inkdex/internal/platform/sec"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

// Domain errors for the occurrence mutations. The message texts are part of
// the editor API contract.
var (
	ErrComicNotFound = &apperr.AppError{
		Code:       "NOT_FOUND",
		Message:    "Comic does not exist",
		HTTPStatus: http.StatusNotFound,
	}
	ErrItemAlreadyInComic = apperr.Conflict("Item is already added to comic")
	ErrItemNotInComic     = apperr.Unprocessable("Item is not in comic")
)

type Service struct {
	gate       *pipeline.Gate
	db         postgres.TxBeginner
	repository Repository
	auditor    *audit.Logger
	newsStore  news.Repository
	newsCheck  NewsChecker
	cache      NavigationCache
}

// NewsChecker is the slice of the news updater the read path needs.
type NewsChecker interface {
	CheckFor(comicID int)
}

func NewService(
	gate *pipeline.Gate,
	db postgres.TxBeginner,
	repository Repository,
	auditor *audit.Logger,
	newsStore news.Repository,
	newsCheck NewsChecker,
	cache NavigationCache,
) *Service {
	return &Service{
		gate:       gate,
		db:         db,
		repository: repository,
		auditor:    auditor,
		newsStore:  newsStore,
		newsCheck:  newsCheck,
		cache:      cache,
	}
}

// # Mutations

// AddItemToComic attaches an existing item, or creates a brand-new one when
// the sentinel id is used, and records the occurrence.
func (service *Service) AddItemToComic(ctx context.Context, request *AddItemRequest) error {
	if _, err := service.gate.Check(ctx, request); err != nil {
		return err
	}

	transaction, err := service.db.Begin(ctx)
	if err != nil {
		return apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	if _, err := service.repository.GetOrCreateComic(ctx, transaction, request.ComicID); err != nil {
		return err
	}

	var target *item.Item
	if request.CreatesNewItem() {
		target = &item.Item{
			ShortName: request.NewItemName,
			Name:      request.NewItemName,
			Type:      item.ParseItemType(request.NewItemType),
			Color:     item.DefaultColor,
		}
		if err := service.repository.CreateItem(ctx, transaction, target); err != nil {
			return err
		}

		created := fmt.Sprintf("Created %s #%d (%s)", target.Type, target.ID, target.Name)
		if err := service.auditor.Log(ctx, transaction, request.Token, created); err != nil {
			return err
		}
	} else {
		target, err = service.repository.GetItem(ctx, request.ItemID)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return item.ErrItemNotFound
			}
			return err
		}

		exists, err := service.repository.OccurrenceExists(ctx, request.ComicID, target.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrItemAlreadyInComic
		}
	}

	if err := service.repository.InsertOccurrence(ctx, transaction, request.ComicID, target.ID); err != nil {
		return err
	}

	added := fmt.Sprintf("Added %s #%d (%s) to comic #%d", target.Type, target.ID, target.Name, request.ComicID)
	if err := service.auditor.Log(ctx, transaction, request.Token, added); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return apperr.Internal(err)
	}

	service.invalidateNavigation(ctx)
	return nil
}

// RemoveItemFromComic detaches an item. Unlike the add path there is no
// get-or-create: removing from an unrecorded comic is an error.
func (service *Service) RemoveItemFromComic(ctx context.Context, request *RemoveItemRequest) error {
	if _, err := service.gate.Check(ctx, request); err != nil {
		return err
	}

	if _, err := service.repository.GetComic(ctx, request.ComicID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return ErrComicNotFound
		}
		return err
	}

	target, err := service.repository.GetItem(ctx, request.ItemID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return item.ErrItemNotFound
		}
		return err
	}

	transaction, err := service.db.Begin(ctx)
	if err != nil {
		return apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	removed, err := service.repository.DeleteOccurrence(ctx, transaction, request.ComicID, target.ID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrItemNotInComic
	}

	action := fmt.Sprintf("Removed %s #%d (%s) from comic #%d", target.Type, target.ID, target.Name, request.ComicID)
	if err := service.auditor.Log(ctx, transaction, request.Token, action); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return apperr.Internal(err)
	}

	service.invalidateNavigation(ctx)
	return nil
}

// SetFlag toggles one comic flag through the dispatch table.
func (service *Service) SetFlag(ctx context.Context, request *SetFlagRequest) error {
	err := service.mutateComic(ctx, request, request.ComicID, func(comic *Comic) (string, error) {
		phrase, err := applyFlag(comic, request.Flag, request.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Set comic #%d %s", comic.ID, phrase), nil
	})
	if err != nil {
		return err
	}

	// Guest and non-canon flips change which comics pass the exclusion
	// filters, so every cached navigation entry is suspect.
	if request.Flag == FlagGuestComic || request.Flag == FlagNonCanon {
		service.invalidateNavigation(ctx)
	}
	return nil
}

// SetTitle overwrites the title, distinguishing first set from change.
func (service *Service) SetTitle(ctx context.Context, request *SetTitleRequest) error {
	return service.mutateComic(ctx, request, request.ComicID, func(comic *Comic) (string, error) {
		previous := comic.Title
		comic.Title = request.Title

		if previous == "" {
			return fmt.Sprintf("Set title on comic #%d to %q", comic.ID, comic.Title), nil
		}
		return fmt.Sprintf("Changed title on comic #%d from %q to %q", comic.ID, previous, comic.Title), nil
	})
}

// SetTagline overwrites the tagline.
func (service *Service) SetTagline(ctx context.Context, request *SetTaglineRequest) error {
	return service.mutateComic(ctx, request, request.ComicID, func(comic *Comic) (string, error) {
		previous := ""
		if comic.Tagline != nil {
			previous = *comic.Tagline
		}
		tagline := request.Tagline
		comic.Tagline = &tagline

		if previous == "" {
			return fmt.Sprintf("Set tagline on comic #%d to %q", comic.ID, tagline), nil
		}
		return fmt.Sprintf("Changed tagline on comic #%d from %q to %q", comic.ID, previous, tagline), nil
	})
}

// SetPublishDate records the publish date and its accuracy.
func (service *Service) SetPublishDate(ctx context.Context, request *SetPublishDateRequest) error {
	return service.mutateComic(ctx, request, request.ComicID, func(comic *Comic) (string, error) {
		previous := comic.PublishDate
		date := request.PublishDate.UTC()
		comic.PublishDate = &date
		comic.IsAccuratePublishDate = request.IsAccuratePublishDate

		if previous == nil {
			return fmt.Sprintf("Set publish date on comic #%d to %q", comic.ID, date.Format("2006-01-02")), nil
		}
		return fmt.Sprintf("Changed publish date on comic #%d from %q to %q",
			comic.ID, previous.Format("2006-01-02"), date.Format("2006-01-02")), nil
	})
}

// mutateComic is the shared field-mutation path: gate, transaction,
// get-or-create, mutate, persist, log, commit.
func (service *Service) mutateComic(
	ctx context.Context,
	request pipeline.TokenCarrier,
	comicID int,
	mutate func(comic *Comic) (string, error),
) error {
	if _, err := service.gate.Check(ctx, request); err != nil {
		return err
	}

	transaction, err := service.db.Begin(ctx)
	if err != nil {
		return apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	comic, err := service.repository.GetOrCreateComic(ctx, transaction, comicID)
	if err != nil {
		return err
	}

	action, err := mutate(comic)
	if err != nil {
		return err
	}

	if err := service.repository.UpdateComic(ctx, transaction, comic); err != nil {
		return err
	}
	if err := service.auditor.Log(ctx, transaction, request.TokenID(), action); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (service *Service) invalidateNavigation(ctx context.Context) {
	if service.cache != nil {
		service.cache.Invalidate(ctx)
	}
}

// # Queries

// GetComicRequest is the tolerant read query: an invalid token degrades to an
// unauthenticated view instead of failing.
type GetComicRequest struct {
	Token           uuid.UUID
	ComicID         int
	Exclude         navigation.Exclusion
	IncludeAllItems bool
}

func (request *GetComicRequest) Validate() error {
	v := &validate.Validator{}
	return v.Min("comicId", request.ComicID, 1).Err()
}

func (request *GetComicRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *GetComicRequest) RequiredPermissions() sec.Permission { return sec.PermissionNone }
func (request *GetComicRequest) AllowInvalidToken() bool             { return true }

// EditorData points an authenticated editor at the nearest comics still
// missing each kind of data.
type EditorData struct {
	MissingCast      navigation.Data `json:"missing_cast"`
	MissingLocation  navigation.Data `json:"missing_location"`
	MissingStoryline navigation.Data `json:"missing_storyline"`
	MissingTitle     navigation.Data `json:"missing_title"`
	MissingTagline   navigation.Data `json:"missing_tagline"`
}

// View is the full reader payload for one comic.
type View struct {
	Comic
	HasData    bool             `json:"has_data"`
	Navigation navigation.Data  `json:"navigation"`
	News       string           `json:"news,omitempty"`
	Items      []*NavigatedItem `json:"items"`
	AllItems   []*NavigatedItem `json:"all_items,omitempty"`
	Editor     *EditorData      `json:"editor_data,omitempty"`
}

// GetComic assembles the reader view. An absent row yields a synthetic blank
// comic with HasData=false; navigation is still computed against the comics
// that do exist.
func (service *Service) GetComic(ctx context.Context, request *GetComicRequest) (*View, error) {
	result, err := service.gate.Check(ctx, request)
	if err != nil {
		return nil, err
	}

	view := &View{HasData: true}

	stored, err := service.repository.GetComic(ctx, request.ComicID)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			return nil, err
		}
		stored = Blank(request.ComicID)
		view.HasData = false
	}
	view.Comic = *stored

	view.Navigation, err = service.repository.ComicNavigation(ctx, request.ComicID, request.Exclude)
	if err != nil {
		return nil, err
	}

	allItems, err := service.allItemsNavigation(ctx, request.ComicID, request.Exclude)
	if err != nil {
		return nil, err
	}

	presentIDs, err := service.repository.ItemIDsInComic(ctx, request.ComicID)
	if err != nil {
		return nil, err
	}
	present := make(map[int]bool, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = true
	}

	// The batch result is ordered by count descending; splitting it keeps
	// that order in both blocks.
	view.Items = make([]*NavigatedItem, 0, len(presentIDs))
	var others []*NavigatedItem
	for _, entry := range allItems {
		if present[entry.Item.ID] {
			view.Items = append(view.Items, entry)
		} else {
			others = append(others, entry)
		}
	}
	if request.IncludeAllItems {
		view.AllItems = others
	}

	if newsRow, err := service.newsStore.GetByComicID(ctx, request.ComicID); err == nil {
		view.News = newsRow.NewsText
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}
	service.newsCheck.CheckFor(request.ComicID)

	if result.Authenticated {
		view.Editor, err = service.editorData(ctx, request.ComicID)
		if err != nil {
			return nil, err
		}
	}

	return view, nil
}

func (service *Service) allItemsNavigation(ctx context.Context, referenceID int, exclude navigation.Exclusion) ([]*NavigatedItem, error) {
	if service.cache != nil {
		if items, ok := service.cache.GetAllItems(ctx, referenceID, exclude); ok {
			return items, nil
		}
	}

	items, err := service.repository.AllItemsNavigation(ctx, referenceID, exclude)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.SetAllItems(ctx, referenceID, exclude, items)
	}
	return items, nil
}

func (service *Service) editorData(ctx context.Context, comicID int) (*EditorData, error) {
	editor := &EditorData{}

	fields := []struct {
		field  MissingField
		target *navigation.Data
	}{
		{MissingCast, &editor.MissingCast},
		{MissingLocation, &editor.MissingLocation},
		{MissingStoryline, &editor.MissingStoryline},
		{MissingTitle, &editor.MissingTitle},
		{MissingTagline, &editor.MissingTagline},
	}

	for _, f := range fields {
		data, err := service.repository.MissingNavigation(ctx, f.field, comicID)
		if err != nil {
			return nil, err
		}
		*f.target = data
	}

	return editor, nil
}

// GetAllComics lists every recorded comic under the exclusion filter.
func (service *Service) GetAllComics(ctx context.Context, exclude navigation.Exclusion) ([]*ListEntry, error) {
	return service.repository.ListComics(ctx, exclude)
}

// GetExcludedComics lists the comics an exclusion filter can remove.
func (service *Service) GetExcludedComics(ctx context.Context) ([]*ListEntry, error) {
	return service.repository.ListExcludedComics(ctx)
}
