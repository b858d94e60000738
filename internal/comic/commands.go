// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/item"
	"github.com/taibuivan/inkdex/internal/platform/constants"
	"github.com/taibuivan/inkdex/internal/platform/sec"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

// AddItemRequest attaches an item to a comic. ItemID may be the
// create-new sentinel, in which case the new item's name and type must be
// supplied (and must be absent otherwise).
type AddItemRequest struct {
	Token       uuid.UUID `json:"token"`
	ComicID     int       `json:"comicId"`
	ItemID      int       `json:"itemId"`
	NewItemName string    `json:"newItemName,omitempty"`
	NewItemType string    `json:"newItemType,omitempty"`
}

// CreatesNewItem reports whether the sentinel id was used.
func (request *AddItemRequest) CreatesNewItem() bool {
	return request.ItemID == constants.CreateNewItemID
}

func (request *AddItemRequest) Validate() error {
	v := &validate.Validator{}
	v.Min("comicId", request.ComicID, 1)

	if request.CreatesNewItem() {
		v.Required("newItemName", request.NewItemName).
			MaxLen("newItemName", request.NewItemName, 255).
			OneOf("newItemType", request.NewItemType,
				string(item.TypeCast), string(item.TypeLocation), string(item.TypeStoryline))
	} else {
		v.Min("itemId", request.ItemID, 1).
			Empty("newItemName", request.NewItemName).
			Empty("newItemType", request.NewItemType)
	}

	return v.Err()
}

func (request *AddItemRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *AddItemRequest) RequiredPermissions() sec.Permission { return sec.CanAddItemToComic }

// RemoveItemRequest detaches an item from a comic.
type RemoveItemRequest struct {
	Token   uuid.UUID `json:"token"`
	ComicID int       `json:"comicId"`
	ItemID  int       `json:"itemId"`
}

func (request *RemoveItemRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("comicId", request.ComicID, 1).
		Min("itemId", request.ItemID, 1).
		Err()
}

func (request *RemoveItemRequest) TokenID() uuid.UUID { return request.Token }
func (request *RemoveItemRequest) RequiredPermissions() sec.Permission {
	return sec.CanRemoveItemFromComic
}

// SetFlagRequest toggles one of the comic's boolean flags.
type SetFlagRequest struct {
	Token   uuid.UUID `json:"token"`
	ComicID int       `json:"comicId"`
	Flag    Flag      `json:"flag"`
	Value   bool      `json:"flagValue"`
}

func (request *SetFlagRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("comicId", request.ComicID, 1).
		OneOf("flag", string(request.Flag), FlagNames...).
		Err()
}

func (request *SetFlagRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *SetFlagRequest) RequiredPermissions() sec.Permission { return sec.CanChangeComicData }

// SetTitleRequest overwrites the comic's title. An empty title is allowed:
// clearing a value is a legitimate edit.
type SetTitleRequest struct {
	Token   uuid.UUID `json:"token"`
	ComicID int       `json:"comicId"`
	Title   string    `json:"title"`
}

func (request *SetTitleRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("comicId", request.ComicID, 1).
		MaxLen("title", request.Title, 255).
		Err()
}

func (request *SetTitleRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *SetTitleRequest) RequiredPermissions() sec.Permission { return sec.CanChangeComicData }

// SetTaglineRequest overwrites the comic's tagline.
type SetTaglineRequest struct {
	Token   uuid.UUID `json:"token"`
	ComicID int       `json:"comicId"`
	Tagline string    `json:"tagline"`
}

func (request *SetTaglineRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("comicId", request.ComicID, 1).
		MaxLen("tagline", request.Tagline, 255).
		Err()
}

func (request *SetTaglineRequest) TokenID() uuid.UUID { return request.Token }
func (request *SetTaglineRequest) RequiredPermissions() sec.Permission {
	return sec.CanChangeComicData
}

// SetPublishDateRequest records when the comic was published and whether the
// date is exact or estimated.
type SetPublishDateRequest struct {
	Token                 uuid.UUID `json:"token"`
	ComicID               int       `json:"comicId"`
	PublishDate           time.Time `json:"publishDate"`
	IsAccuratePublishDate bool      `json:"isAccuratePublishDate"`
}

func (request *SetPublishDateRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("comicId", request.ComicID, 1).
		Custom("publishDate", request.PublishDate.IsZero(), "This field is required").
		Err()
}

func (request *SetPublishDateRequest) TokenID() uuid.UUID { return request.Token }
func (request *SetPublishDateRequest) RequiredPermissions() sec.Permission {
	return sec.CanChangeComicData
}
