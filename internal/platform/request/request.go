// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named integer URL parameter from the request.

Returns:
  - int: The parsed value
  - error: A field-scoped validation error when the segment is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
TokenQuery retrieves a bearer token from a query parameter.

A missing or malformed value yields uuid.Nil, which the request gate treats
as "no token"; whether that is fatal depends on the request's tolerance.
*/
func TokenQuery(request *http.Request, name string) uuid.UUID {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil
	}
	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return token
}

/*
IntQuery retrieves a named integer query parameter, falling back to a default
when the parameter is absent or malformed.
*/
func IntQuery(request *http.Request, name string, defaultValue int) int {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
