// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkdex/internal/navigation"
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
	router.Get("/", handler.listComics)
	router.Get("/excluded", handler.listExcludedComics)
	router.Get("/{id}", handler.getComic)

	router.Post("/additem", handler.addItem)
	router.Post("/removeitem", handler.removeItem)
	router.Post("/setflag", handler.setFlag)
	router.Post("/settitle", handler.setTitle)
	router.Post("/settagline", handler.setTagline)
	router.Post("/setpublishdate", handler.setPublishDate)
}

// parseExclusion maps the "exclude" query parameter, turning unknown values
// into a field-scoped validation error.
func parseExclusion(request *http.Request) (navigation.Exclusion, error) {
	exclude, err := navigation.ParseExclusion(request.URL.Query().Get("exclude"))
	if err != nil {
		return navigation.ExcludeNone, validate.RequiredError("exclude", "Must be one of: guest, non-canon")
	}
	return exclude, nil
}

func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	exclude, err := parseExclusion(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comics, err := handler.service.GetAllComics(request.Context(), exclude)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comics)
}

func (handler *Handler) listExcludedComics(writer http.ResponseWriter, request *http.Request) {
	comics, err := handler.service.GetExcludedComics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comics)
}

func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exclude, err := parseExclusion(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetComic(request.Context(), &GetComicRequest{
		Token:           requestutil.TokenQuery(request, "token"),
		ComicID:         comicID,
		Exclude:         exclude,
		IncludeAllItems: request.URL.Query().Get("include") == "all",
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	var addRequest AddItemRequest
	if err := requestutil.DecodeJSON(request, &addRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddItemToComic(request.Context(), &addRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	var removeRequest RemoveItemRequest
	if err := requestutil.DecodeJSON(request, &removeRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveItemFromComic(request.Context(), &removeRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setFlag(writer http.ResponseWriter, request *http.Request) {
	var flagRequest SetFlagRequest
	if err := requestutil.DecodeJSON(request, &flagRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetFlag(request.Context(), &flagRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setTitle(writer http.ResponseWriter, request *http.Request) {
	var titleRequest SetTitleRequest
	if err := requestutil.DecodeJSON(request, &titleRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetTitle(request.Context(), &titleRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setTagline(writer http.ResponseWriter, request *http.Request) {
	var taglineRequest SetTaglineRequest
	if err := requestutil.DecodeJSON(request, &taglineRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetTagline(request.Context(), &taglineRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setPublishDate(writer http.ResponseWriter, request *http.Request) {
	var dateRequest SetPublishDateRequest
	if err := requestutil.DecodeJSON(request, &dateRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetPublishDate(request.Context(), &dateRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
