// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/platform/dberr"
	"github.com/taibuivan/inkdex/internal/platform/sec"
)

// Service is the Token Authority. All permission decisions in the request
// pipeline go through it; nothing else reads the token table.
type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// IsValid reports whether the token identifies a provisioned editor.
// The zero UUID is never valid, and a missing row is not an error.
func (service *Service) IsValid(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	_, err := service.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GrantedPermissions resolves the token to its permission bitset. Unlike
// [Service.IsValid], an unknown token is an error here: callers must have
// established validity first.
func (service *Service) GrantedPermissions(ctx context.Context, id uuid.UUID) (sec.Permission, error) {
	if id == uuid.Nil {
		return sec.PermissionNone, dberr.ErrNotFound
	}

	token, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return sec.PermissionNone, err
	}

	return token.Permissions(), nil
}

// Identify returns the token's display identifier for audit purposes.
func (service *Service) Identify(ctx context.Context, id uuid.UUID) (string, error) {
	token, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return token.Identifier, nil
}
