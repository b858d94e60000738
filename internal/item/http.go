// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	requestutil "github.com/taibuivan/inkdex/internal/platform/request"
	"github.com/taibuivan/inkdex/internal/platform/respond"
	"github.com/taibuivan/inkdex/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)
	router.Get("/{id}/related", handler.getRelatedItems)
	router.Get("/{id}/images", handler.getItemImages)
	router.Get("/image/{id}", handler.getImage)

	router.Post("/setproperty", handler.setProperty)
	router.Post("/image/upload", handler.uploadImage)
}

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.GetAllItems(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetItem(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) getRelatedItems(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemType := ParseItemType(request.URL.Query().Get("type"))
	amount := requestutil.IntQuery(request, "amount", 5)

	related, err := handler.service.GetRelatedItems(request.Context(), itemID, itemType, amount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, related)
}

func (handler *Handler) getItemImages(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	images, err := handler.service.GetItemImages(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) getImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	data, err := handler.service.GetImage(request.Context(), imageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", http.DetectContentType(data))
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(data)
}

// setPropertyPayload is the wire shape of the property endpoint; the property
// discriminator selects the typed command.
type setPropertyPayload struct {
	Token    uuid.UUID `json:"token"`
	ItemID   int       `json:"item"`
	Property string    `json:"property"`
	Value    string    `json:"value"`
}

func (handler *Handler) setProperty(writer http.ResponseWriter, request *http.Request) {
	var payload setPropertyPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var err error
	switch payload.Property {
	case "name":
		err = handler.service.SetName(request.Context(), &SetNameRequest{
			Token: payload.Token, ItemID: payload.ItemID, Name: payload.Value,
		})
	case "shortName":
		err = handler.service.SetShortName(request.Context(), &SetShortNameRequest{
			Token: payload.Token, ItemID: payload.ItemID, ShortName: payload.Value,
		})
	case "color":
		err = handler.service.SetColor(request.Context(), &SetColorRequest{
			Token: payload.Token, ItemID: payload.ItemID, Color: payload.Value,
		})
	default:
		err = validate.RequiredError("property", "Must be one of: name, shortName, color")
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	var uploadRequest AddImageRequest
	if err := requestutil.DecodeJSON(request, &uploadRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	imageID, err := handler.service.AddImage(request.Context(), &uploadRequest)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]int{"id": imageID})
}
