// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts token persistence.
type Repository interface {
	// GetByID returns the token row, or dberr-mapped not-found.
	GetByID(ctx context.Context, id uuid.UUID) (*Token, error)
}
