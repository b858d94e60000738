// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and the business constants of the
archive that must never be inferred at runtime.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Archive Facts: Fixed ids marking editorial/process changes in the comic run.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "inkdex-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Archive Facts

const (
	// TaglineCutoffComicID is the last comic published before taglines were
	// introduced. Missing-tagline navigation only considers comics with an id
	// strictly greater than this value. The cutoff is an editorial fact of the
	// archive, not something derivable from the data.
	TaglineCutoffComicID = 3132

	// CreateNewItemID is the sentinel item id that instructs AddItemToComic to
	// create a brand-new item instead of attaching an existing one.
	CreateNewItemID = -1
)

// # News Refresh

const (
	// NewsUpdateInterval is how often the background updater drains the
	// pending comic set and re-checks outdated news rows.
	NewsUpdateInterval = 5 * time.Minute

	// NewsMaxUpdateFactor caps the per-comic backoff factor; rows at or above
	// this factor are never refreshed again automatically.
	NewsMaxUpdateFactor = 12.0
)

// # Navigation Cache

const (
	// NavigationCacheTTL bounds staleness of cached all-item navigation data.
	NavigationCacheTTL = 5 * time.Minute

	// RedisPrefixNavigation is the key prefix for cached batch navigation data.
	RedisPrefixNavigation = "nav:"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
)
