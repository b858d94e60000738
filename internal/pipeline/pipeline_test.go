// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pipeline_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/pipeline"
	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/sec"
)

type fakeAuthority struct {
	valid   map[uuid.UUID]sec.Permission
	queried bool
}

func (authority *fakeAuthority) IsValid(_ context.Context, id uuid.UUID) (bool, error) {
	authority.queried = true
	if id == uuid.Nil {
		return false, nil
	}
	_, ok := authority.valid[id]
	return ok, nil
}

func (authority *fakeAuthority) GrantedPermissions(_ context.Context, id uuid.UUID) (sec.Permission, error) {
	granted, ok := authority.valid[id]
	if !ok {
		return sec.PermissionNone, errors.New("unknown token")
	}
	return granted, nil
}

type testRequest struct {
	shapeErr error
	token    uuid.UUID
	required sec.Permission
	tolerant bool
}

func (request *testRequest) Validate() error                     { return request.shapeErr }
func (request *testRequest) TokenID() uuid.UUID                  { return request.token }
func (request *testRequest) RequiredPermissions() sec.Permission { return request.required }
func (request *testRequest) AllowInvalidToken() bool             { return request.tolerant }

type tokenlessRequest struct {
	shapeErr error
}

func (request *tokenlessRequest) Validate() error { return request.shapeErr }

/*
TestGate_ShapeValidationFirst verifies that a malformed request is rejected
before the Token Authority is ever consulted.
*/
func TestGate_ShapeValidationFirst(t *testing.T) {
	authority := &fakeAuthority{}
	gate := pipeline.NewGate(authority)

	shapeErr := apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   "comicId",
		Message: "must be positive",
	})
	_, err := gate.Check(context.Background(), &testRequest{
		shapeErr: shapeErr,
		token:    uuid.New(),
		required: sec.CanChangeComicData,
	})

	require.Error(t, err)
	assert.Equal(t, shapeErr, err)
	assert.False(t, authority.queried, "Token Authority must not be called for malformed requests")
}

/*
TestGate_TokenValidation verifies the 401 path for absent and unknown tokens,
and the pass-through for valid ones.
*/
func TestGate_TokenValidation(t *testing.T) {
	known := uuid.New()
	authority := &fakeAuthority{valid: map[uuid.UUID]sec.Permission{
		known: sec.PermissionNone,
	}}
	gate := pipeline.NewGate(authority)

	tests := []struct {
		name  string
		token uuid.UUID
	}{
		{name: "absent token", token: uuid.Nil},
		{name: "unknown token", token: uuid.New()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gate.Check(context.Background(), &testRequest{token: tc.token})

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusUnauthorized, ae.HTTPStatus)

			var cause *pipeline.InvalidTokenError
			require.True(t, errors.As(err, &cause))
			assert.Equal(t, tc.token, cause.Token)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		result, err := gate.Check(context.Background(), &testRequest{token: known})
		require.NoError(t, err)
		assert.True(t, result.Authenticated)
	})
}

/*
TestGate_TolerantToken verifies that a request declaring tolerance continues
with Authenticated=false instead of being rejected.
*/
func TestGate_TolerantToken(t *testing.T) {
	known := uuid.New()
	gate := pipeline.NewGate(&fakeAuthority{valid: map[uuid.UUID]sec.Permission{
		known: sec.PermissionNone,
	}})

	tests := []struct {
		name          string
		token         uuid.UUID
		authenticated bool
	}{
		{name: "missing token tolerated", token: uuid.Nil, authenticated: false},
		{name: "unknown token tolerated", token: uuid.New(), authenticated: false},
		{name: "valid token authenticates", token: known, authenticated: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := gate.Check(context.Background(), &testRequest{
				token:    tc.token,
				tolerant: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.authenticated, result.Authenticated)
		})
	}
}

/*
TestGate_PermissionCheck verifies the 403 path carries the missing bits, that
supersets pass, and that an empty requirement only needs validity.
*/
func TestGate_PermissionCheck(t *testing.T) {
	editor := uuid.New()
	gate := pipeline.NewGate(&fakeAuthority{valid: map[uuid.UUID]sec.Permission{
		editor: sec.CanAddItemToComic | sec.CanChangeComicData,
	}})

	t.Run("missing bits rejected", func(t *testing.T) {
		_, err := gate.Check(context.Background(), &testRequest{
			token:    editor,
			required: sec.CanChangeComicData | sec.CanChangeItemData,
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)

		var cause *pipeline.PermissionError
		require.True(t, errors.As(err, &cause))
		assert.Equal(t, editor, cause.Token)
		assert.Equal(t, sec.CanChangeItemData, cause.Missing)
	})

	t.Run("exact grant passes", func(t *testing.T) {
		result, err := gate.Check(context.Background(), &testRequest{
			token:    editor,
			required: sec.CanAddItemToComic | sec.CanChangeComicData,
		})
		require.NoError(t, err)
		assert.True(t, result.Authenticated)
	})

	t.Run("empty requirement needs only validity", func(t *testing.T) {
		result, err := gate.Check(context.Background(), &testRequest{token: editor})
		require.NoError(t, err)
		assert.True(t, result.Authenticated)
	})
}

/*
TestGate_TokenlessRequest verifies that requests without a token carrier skip
token and permission checks entirely.
*/
func TestGate_TokenlessRequest(t *testing.T) {
	authority := &fakeAuthority{}
	gate := pipeline.NewGate(authority)

	result, err := gate.Check(context.Background(), &tokenlessRequest{})
	require.NoError(t, err)
	assert.False(t, result.Authenticated)
	assert.False(t, authority.queried)
}
