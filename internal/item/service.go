// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"net/http"

	"github.com/taibuivan/inkdex/internal/audit"
	"github.com/taibuivan/inkdex/internal/navigation"
	"github.com/taibuivan/inkdex/internal/pipeline"
	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
	"github.com/taibuivan/inkdex/internal/platform/postgres"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

// ErrItemNotFound is the domain error for item-scoped commands and queries.
// Items are never get-or-created; the id must already exist.
var ErrItemNotFound = &apperr.AppError{
	Code:       "NOT_FOUND",
	Message:    "Item does not exist",
	HTTPStatus: http.StatusNotFound,
}

// castagnoli is the CRC32-C polynomial table used for image checksums.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Detail is the single-item view: the item plus its position in the archive.
type Detail struct {
	Item
	TotalAppearances int  `json:"total_appearances"`
	First            *int `json:"first"`
	Last             *int `json:"last"`
}

type Service struct {
	gate       *pipeline.Gate
	db         postgres.TxBeginner
	repository Repository
	navigation NavigationRepository
	auditor    *audit.Logger
}

func NewService(
	gate *pipeline.Gate,
	db postgres.TxBeginner,
	repository Repository,
	navigationRepository NavigationRepository,
	auditor *audit.Logger,
) *Service {
	return &Service{
		gate:       gate,
		db:         db,
		repository: repository,
		navigation: navigationRepository,
		auditor:    auditor,
	}
}

// # Commands

// SetName renames the item and logs the transition.
func (service *Service) SetName(ctx context.Context, request *SetNameRequest) error {
	return service.setProperty(ctx, request, request.ItemID, func(item *Item) (string, error) {
		previous := item.Name
		item.Name = request.Name

		if previous == "" {
			return fmt.Sprintf("Set name of %s #%d to %q", item.Type, item.ID, item.Name), nil
		}
		return fmt.Sprintf("Changed name of %s #%d from %q to %q", item.Type, item.ID, previous, item.Name), nil
	})
}

// SetShortName changes the item's short display name.
func (service *Service) SetShortName(ctx context.Context, request *SetShortNameRequest) error {
	return service.setProperty(ctx, request, request.ItemID, func(item *Item) (string, error) {
		previous := item.ShortName
		item.ShortName = request.ShortName

		if previous == "" {
			return fmt.Sprintf("Set shortName of %s #%d to %q", item.Type, item.ID, item.ShortName), nil
		}
		return fmt.Sprintf("Changed shortName of %s #%d from %q to %q", item.Type, item.ID, previous, item.ShortName), nil
	})
}

// SetColor changes the item's display color.
func (service *Service) SetColor(ctx context.Context, request *SetColorRequest) error {
	return service.setProperty(ctx, request, request.ItemID, func(item *Item) (string, error) {
		color, err := ParseColor(request.Color)
		if err != nil {
			// The shape check already enforced the hex format.
			return "", apperr.Invariant("color passed validation but failed to parse")
		}

		previous := item.Color
		item.Color = color
		return fmt.Sprintf("Changed color of %s #%d from %q to %q", item.Type, item.ID, previous.Hex(), item.Color.Hex()), nil
	})
}

// setProperty is the shared command path: gate, load, mutate, persist, log.
func (service *Service) setProperty(
	ctx context.Context,
	request pipeline.TokenCarrier,
	itemID int,
	mutate func(item *Item) (string, error),
) error {
	if _, err := service.gate.Check(ctx, request); err != nil {
		return err
	}

	item, err := service.repository.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	action, err := mutate(item)
	if err != nil {
		return err
	}

	transaction, err := service.db.Begin(ctx)
	if err != nil {
		return apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	if err := service.repository.Update(ctx, transaction, item); err != nil {
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

// AddImage stores a reference image after verifying its checksum.
func (service *Service) AddImage(ctx context.Context, request *AddImageRequest) (int, error) {
	if _, err := service.gate.Check(ctx, request); err != nil {
		return 0, err
	}

	item, err := service.repository.GetByID(ctx, request.ItemID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return 0, ErrItemNotFound
		}
		return 0, err
	}

	// The checksum is always recomputed server-side; a caller-supplied hash
	// is an integrity claim to verify, never a value to trust.
	computed := crc32.Checksum(request.Image, castagnoli)
	if request.CRC32CHash != nil && *request.CRC32CHash != computed {
		return 0, validate.RequiredError("crc32c_hash", "Checksum does not match the uploaded image")
	}

	transaction, err := service.db.Begin(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	imageID, err := service.repository.InsertImage(ctx, transaction, item.ID, request.Image, computed)
	if err != nil {
		return 0, err
	}

	action := fmt.Sprintf("Uploaded image #%d for item #%d", imageID, item.ID)
	if err := service.auditor.Log(ctx, transaction, request.Token, action); err != nil {
		return 0, err
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, apperr.Internal(err)
	}
	return imageID, nil
}

// # Queries

// GetAllItems lists every item with its occurrence count.
func (service *Service) GetAllItems(ctx context.Context) ([]*CountedItem, error) {
	return service.repository.List(ctx)
}

// GetItem returns the item with its overall first/last appearance and count.
func (service *Service) GetItem(ctx context.Context, id int) (*Detail, error) {
	item, err := service.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	// Reference 0 sits before every comic id, so First doubles as the overall
	// first appearance and Previous is vacuously empty.
	data, count, err := service.navigation.ItemNavigation(ctx, id, 0, navigation.ExcludeNone)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Item:             *item,
		TotalAppearances: count,
		First:            data.First,
		Last:             data.Last,
	}, nil
}

// GetRelatedItems returns the items of the given type most frequently sharing
// comics with the given item.
func (service *Service) GetRelatedItems(ctx context.Context, itemID int, itemType ItemType, amount int) ([]*CountedItem, error) {
	v := &validate.Validator{}
	if err := v.
		Min("item", itemID, 1).
		Range("amount", amount, 1, 50).
		Err(); err != nil {
		return nil, err
	}

	if _, err := service.repository.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return service.repository.RelatedItems(ctx, itemID, itemType, amount)
}

// GetItemImages lists image metadata for an item.
func (service *Service) GetItemImages(ctx context.Context, itemID int) ([]*Image, error) {
	return service.repository.ListImages(ctx, itemID)
}

// GetImage returns the raw image bytes.
func (service *Service) GetImage(ctx context.Context, imageID int) ([]byte, error) {
	data, err := service.repository.GetImageData(ctx, imageID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Image")
		}
		return nil, err
	}
	return data, nil
}
