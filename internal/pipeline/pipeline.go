// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pipeline implements the request gate every command and query passes
through before its handler runs.

The gate applies three checks in a fixed order:

 1. Shape validation, via [Validatable].
 2. Token validation, via the Token Authority, for requests implementing
    [TokenCarrier].
 3. Permission check, comparing the token's granted bitset against the
    request's required bitset.

The ordering is load-bearing: a request that fails shape validation never
reaches the Token Authority, so malformed input cannot probe token validity.
The gate itself is side-effect free.
*/
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/platform/apperr"
	"github.com/taibuivan/inkdex/internal/platform/sec"
)

// Validatable is implemented by every request that passes through the gate.
// Validate returns an [apperr.AppError] describing per-field failures.
type Validatable interface {
	Validate() error
}

// TokenCarrier is implemented by requests that carry a bearer token.
// Requests without it skip token and permission checks entirely.
type TokenCarrier interface {
	Validatable

	// TokenID returns the carried token, uuid.Nil when absent.
	TokenID() uuid.UUID
	// RequiredPermissions returns the bits this request needs. An empty
	// requirement means a merely valid token is authorized.
	RequiredPermissions() sec.Permission
}

// TolerantTokenCarrier marks a request that accepts an invalid or missing
// token. Public read queries use it to optionally reveal editor data to
// authenticated callers without rejecting everyone else.
type TolerantTokenCarrier interface {
	TokenCarrier

	AllowInvalidToken() bool
}

// Authority is the slice of the Token Authority the gate depends on.
type Authority interface {
	IsValid(ctx context.Context, id uuid.UUID) (bool, error)
	GrantedPermissions(ctx context.Context, id uuid.UUID) (sec.Permission, error)
}

// Result reports what the gate established about the request.
type Result struct {
	// Authenticated is true when the carried token was present and valid.
	// Tolerant requests observe false here instead of a rejection.
	Authenticated bool
}

// InvalidTokenError is the typed cause behind the 401 the gate returns for
// an absent or unknown token.
type InvalidTokenError struct {
	Token uuid.UUID
}

func (e *InvalidTokenError) Error() string {
	return "Invalid token"
}

// PermissionError is the typed cause behind the gate's 403. It carries the
// token and the missing bits so handlers can log the refusal.
type PermissionError struct {
	Token   uuid.UUID
	Missing sec.Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("Token %s is missing permission: %s", e.Token, e.Missing)
}

// Gate runs the check chain. One Gate instance is shared by all handlers.
type Gate struct {
	authority Authority
}

func NewGate(authority Authority) *Gate {
	return &Gate{authority: authority}
}

// Check runs the chain against the request and reports the outcome.
// The returned error is always an [*apperr.AppError]; validation failures
// come back verbatim from the request's Validate.
func (gate *Gate) Check(ctx context.Context, request Validatable) (Result, error) {
	if err := request.Validate(); err != nil {
		return Result{}, err
	}

	carrier, ok := request.(TokenCarrier)
	if !ok {
		return Result{}, nil
	}

	token := carrier.TokenID()
	valid, err := gate.authority.IsValid(ctx, token)
	if err != nil {
		return Result{}, err
	}

	if !valid {
		if tolerant, ok := request.(TolerantTokenCarrier); ok && tolerant.AllowInvalidToken() {
			return Result{Authenticated: false}, nil
		}
		rejection := apperr.Unauthorized("Invalid token")
		rejection.Cause = &InvalidTokenError{Token: token}
		return Result{}, rejection
	}

	required := carrier.RequiredPermissions()
	if required != sec.PermissionNone {
		granted, err := gate.authority.GrantedPermissions(ctx, token)
		if err != nil {
			return Result{}, err
		}
		if !granted.Has(required) {
			missing := granted.Missing(required)
			rejection := apperr.Forbidden("Insufficient permission: " + missing.String())
			rejection.Cause = &PermissionError{Token: token, Missing: missing}
			return Result{}, rejection
		}
	}

	return Result{Authenticated: true}, nil
}
