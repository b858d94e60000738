/*
Package navigation implements the boundary queries that power reader and
editor navigation: for an ordered set of comic ids matching some predicate,
find the first, previous, next, and last id relative to a reference comic.

The comic id space is dense-ish with gaps (unfetched comics), so every
predicate — "comics this item appears in", "comics still missing a title" —
yields a sparse, sorted subset of integers. Navigation is then pure order
statistics over that subset:

  - First/Last: the subset's minimum and maximum.
  - Previous/Next: the nearest ids strictly below and above the reference.
  - Count: the subset's size.

The reference id itself is excluded from Previous/Next by definition, but
participates in First/Last/Count when it matches the predicate.

Storage implements the same semantics in SQL (MIN/MAX/COUNT aggregates with
FILTER clauses); this package is the in-memory engine used wherever the id
set is already at hand, and the executable definition the SQL is tested
against.
*/
package navigation

import (
	"fmt"
	"sort"
)

// # Exclusion Filters

// Exclusion narrows a navigation predicate by removing guest or non-canon
// comics. Zero or one filter applies per query; they never combine.
type Exclusion int

const (
	ExcludeNone Exclusion = iota
	ExcludeGuest
	ExcludeNonCanon
)

// ParseExclusion maps the wire representation ("", "guest", "non-canon") to
// an [Exclusion]. Unknown values are rejected so that typos in editor tooling
// fail loudly instead of silently disabling the filter.
func ParseExclusion(value string) (Exclusion, error) {
	switch value {
	case "":
		return ExcludeNone, nil
	case "guest":
		return ExcludeGuest, nil
	case "non-canon":
		return ExcludeNonCanon, nil
	default:
		return ExcludeNone, fmt.Errorf("navigation: unknown exclusion %q", value)
	}
}

// String returns the wire representation used in query parameters and cache keys.
func (e Exclusion) String() string {
	switch e {
	case ExcludeGuest:
		return "guest"
	case ExcludeNonCanon:
		return "non-canon"
	default:
		return ""
	}
}

// # Navigation Data

// Data is the first/previous/next/last tuple for one predicate. Nil means
// "no such comic" — absence of data is not an error.
type Data struct {
	First    *int `json:"first"`
	Previous *int `json:"previous"`
	Next     *int `json:"next"`
	Last     *int `json:"last"`
}

// ItemNavigation pairs an item id with its navigation data and the total
// number of comics the item appears in under the active exclusion filter.
type ItemNavigation struct {
	ItemID int `json:"id"`
	Data
	Count int `json:"count"`
}

// # Boundary Engine

// Compute derives navigation data from a sorted ascending slice of comic ids
// relative to the reference id. It returns the data together with the subset
// size. An empty slice yields all-nil fields and a zero count.
func Compute(sortedIDs []int, referenceID int) (Data, int) {
	if len(sortedIDs) == 0 {
		return Data{}, 0
	}

	data := Data{
		First: intPtr(sortedIDs[0]),
		Last:  intPtr(sortedIDs[len(sortedIDs)-1]),
	}

	// Index of the first id >= referenceID; everything left of it is Previous
	// territory. Strict inequality keeps the reference itself out of both.
	at := sort.SearchInts(sortedIDs, referenceID)
	if at > 0 {
		data.Previous = intPtr(sortedIDs[at-1])
	}

	after := sort.SearchInts(sortedIDs, referenceID+1)
	if after < len(sortedIDs) {
		data.Next = intPtr(sortedIDs[after])
	}

	return data, len(sortedIDs)
}

// ComputeAll runs [Compute] for every item in one pass over the supplied
// occurrence map (item id → sorted ascending comic ids). Results are ordered
// by item id for deterministic output.
func ComputeAll(occurrencesByItem map[int][]int, referenceID int) []ItemNavigation {
	itemIDs := make([]int, 0, len(occurrencesByItem))
	for itemID := range occurrencesByItem {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Ints(itemIDs)

	result := make([]ItemNavigation, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		data, count := Compute(occurrencesByItem[itemID], referenceID)
		result = append(result, ItemNavigation{ItemID: itemID, Data: data, Count: count})
	}
	return result
}

func intPtr(v int) *int { return &v }
