// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/platform/sec"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

// SetNameRequest renames an item.
type SetNameRequest struct {
	Token  uuid.UUID `json:"token"`
	ItemID int       `json:"item"`
	Name   string    `json:"name"`
}

func (request *SetNameRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("item", request.ItemID, 1).
		Required("name", request.Name).
		MaxLen("name", request.Name, 255).
		Err()
}

func (request *SetNameRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *SetNameRequest) RequiredPermissions() sec.Permission { return sec.CanChangeItemData }

// SetShortNameRequest changes an item's short display name.
type SetShortNameRequest struct {
	Token     uuid.UUID `json:"token"`
	ItemID    int       `json:"item"`
	ShortName string    `json:"shortName"`
}

func (request *SetShortNameRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("item", request.ItemID, 1).
		Required("shortName", request.ShortName).
		MaxLen("shortName", request.ShortName, 50).
		Err()
}

func (request *SetShortNameRequest) TokenID() uuid.UUID { return request.Token }
func (request *SetShortNameRequest) RequiredPermissions() sec.Permission {
	return sec.CanChangeItemData
}

// SetColorRequest changes an item's display color.
type SetColorRequest struct {
	Token  uuid.UUID `json:"token"`
	ItemID int       `json:"item"`
	Color  string    `json:"color"`
}

func (request *SetColorRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("item", request.ItemID, 1).
		HexColor("color", request.Color).
		Err()
}

func (request *SetColorRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *SetColorRequest) RequiredPermissions() sec.Permission { return sec.CanChangeItemData }

// AddImageRequest attaches a reference image to an item. CRC32CHash is the
// caller's optional integrity claim over the raw bytes.
type AddImageRequest struct {
	Token      uuid.UUID `json:"token"`
	ItemID     int       `json:"item"`
	Image      []byte    `json:"image"`
	CRC32CHash *uint32   `json:"crc32c_hash,omitempty"`
}

func (request *AddImageRequest) Validate() error {
	v := &validate.Validator{}
	return v.
		Min("item", request.ItemID, 1).
		Custom("image", len(request.Image) == 0, "Image data is required").
		Err()
}

func (request *AddImageRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *AddImageRequest) RequiredPermissions() sec.Permission { return sec.CanAddImageToItem }
