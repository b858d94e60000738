// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package audit records the append-only trail of mutating operations.
//
// Every successful mutation writes one entry inside the mutation's own
// transaction, so the trail and the change commit or roll back together.
// Entries are never updated or deleted.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one line of the audit trail.
type LogEntry struct {
	ID        int64     `json:"id"`
	UserToken uuid.UUID `json:"user_token"`
	CreatedAt time.Time `json:"created_at"`
	Action    string    `json:"action"`
}

// Clock abstracts wall time so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock yields the real time in UTC. Entries are always stamped in
// UTC regardless of server locale.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
