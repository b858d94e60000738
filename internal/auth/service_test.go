// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/auth"
	"github.com/taibuivan/inkdex/internal/platform/dberr"
	"github.com/taibuivan/inkdex/internal/platform/sec"
)

type fakeTokenRepository struct {
	tokens map[uuid.UUID]*auth.Token
}

func (repository *fakeTokenRepository) GetByID(_ context.Context, id uuid.UUID) (*auth.Token, error) {
	token, ok := repository.tokens[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return token, nil
}

/*
TestService_IsValid verifies the token validity rules: the zero UUID and
unknown tokens are invalid without being errors.
*/
func TestService_IsValid(t *testing.T) {
	known := uuid.New()
	service := auth.NewService(&fakeTokenRepository{
		tokens: map[uuid.UUID]*auth.Token{
			known: {ID: known, Identifier: "editor-one"},
		},
	})

	tests := []struct {
		name  string
		id    uuid.UUID
		valid bool
	}{
		{name: "known token", id: known, valid: true},
		{name: "unknown token", id: uuid.New(), valid: false},
		{name: "zero uuid", id: uuid.Nil, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			valid, err := service.IsValid(context.Background(), tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, valid)
		})
	}
}

/*
TestService_GrantedPermissions verifies that grant columns assemble into the
expected bitset and that unknown tokens are an error, not an empty set.
*/
func TestService_GrantedPermissions(t *testing.T) {
	full := uuid.New()
	partial := uuid.New()
	none := uuid.New()

	service := auth.NewService(&fakeTokenRepository{
		tokens: map[uuid.UUID]*auth.Token{
			full: {
				ID:                     full,
				Identifier:             "admin",
				CanAddItemToComic:      true,
				CanRemoveItemFromComic: true,
				CanChangeComicData:     true,
				CanAddImageToItem:      true,
				CanRemoveImageFromItem: true,
				CanChangeItemData:      true,
			},
			partial: {
				ID:                 partial,
				Identifier:         "comic-editor",
				CanAddItemToComic:  true,
				CanChangeComicData: true,
			},
			none: {ID: none, Identifier: "observer"},
		},
	})

	tests := []struct {
		name     string
		id       uuid.UUID
		expected sec.Permission
	}{
		{
			name: "all grants",
			id:   full,
			expected: sec.CanAddItemToComic | sec.CanRemoveItemFromComic |
				sec.CanChangeComicData | sec.CanAddImageToItem |
				sec.CanRemoveImageFromItem | sec.CanChangeItemData,
		},
		{
			name:     "partial grants",
			id:       partial,
			expected: sec.CanAddItemToComic | sec.CanChangeComicData,
		},
		{name: "no grants", id: none, expected: sec.PermissionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			granted, err := service.GrantedPermissions(context.Background(), tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, granted)
		})
	}

	t.Run("unknown token is an error", func(t *testing.T) {
		_, err := service.GrantedPermissions(context.Background(), uuid.New())
		assert.Error(t, err)
	})

	t.Run("zero uuid is an error", func(t *testing.T) {
		_, err := service.GrantedPermissions(context.Background(), uuid.Nil)
		assert.Error(t, err)
	})
}
