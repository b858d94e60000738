// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comic owns the comic metadata: the comic rows themselves, the
// occurrences linking items to comics, the navigation queries built over
// them, and every comic-scoped mutation.
package comic

import (
	"time"

	"github.com/taibuivan/inkdex/internal/platform/apperr"
)

// Comic is one issue of the archive. Ids come from the source site's
// canonical numbering and are never generated here. A missing row means "no
// data recorded yet", not "no such comic"; mutations get-or-create the row.
type Comic struct {
	ID                    int        `json:"comic"`
	Title                 string     `json:"title"`
	Tagline               *string    `json:"tagline,omitempty"`
	PublishDate           *time.Time `json:"publish_date,omitempty"`
	IsAccuratePublishDate bool       `json:"is_accurate_publish_date"`

	// Known-absent flags. They distinguish "truly has none" from "not yet
	// filled in" for each optional aspect of a comic.
	IsGuestComic   bool `json:"is_guest_comic"`
	IsNonCanon     bool `json:"is_non_canon"`
	HasNoCast      bool `json:"has_no_cast"`
	HasNoLocation  bool `json:"has_no_location"`
	HasNoStoryline bool `json:"has_no_storyline"`
	HasNoTitle     bool `json:"has_no_title"`
	HasNoTagline   bool `json:"has_no_tagline"`
}

// Blank returns the comic a get-or-create materializes: empty title, all
// flags false.
func Blank(id int) *Comic {
	return &Comic{ID: id}
}

// Flag discriminates which of the boolean comic flags a SetFlag command
// targets. The wire names match the original API.
type Flag string

const (
	FlagGuestComic  Flag = "isGuestComic"
	FlagNonCanon    Flag = "isNonCanon"
	FlagNoCast      Flag = "hasNoCast"
	FlagNoLocation  Flag = "hasNoLocation"
	FlagNoStoryline Flag = "hasNoStoryline"
	FlagNoTitle     Flag = "hasNoTitle"
	FlagNoTagline   Flag = "hasNoTagline"
)

// FlagNames lists every valid wire name, for shape validation.
var FlagNames = []string{
	string(FlagGuestComic), string(FlagNonCanon), string(FlagNoCast),
	string(FlagNoLocation), string(FlagNoStoryline), string(FlagNoTitle),
	string(FlagNoTagline),
}

// flagSpec binds a flag kind to its field and the two audit phrasings.
type flagSpec struct {
	apply     func(comic *Comic, value bool)
	trueText  string
	falseText string
}

// flagTable is the single dispatch point for SetFlag. Adding a comic flag
// means adding exactly one row here.
var flagTable = map[Flag]flagSpec{
	FlagGuestComic: {
		apply:     func(comic *Comic, value bool) { comic.IsGuestComic = value },
		trueText:  "to be a guest comic",
		falseText: "to be a Jeph comic",
	},
	FlagNonCanon: {
		apply:     func(comic *Comic, value bool) { comic.IsNonCanon = value },
		trueText:  "to be non-canon",
		falseText: "to be canon",
	},
	FlagNoCast: {
		apply:     func(comic *Comic, value bool) { comic.HasNoCast = value },
		trueText:  "to have no cast",
		falseText: "to have cast",
	},
	FlagNoLocation: {
		apply:     func(comic *Comic, value bool) { comic.HasNoLocation = value },
		trueText:  "to have no locations",
		falseText: "to have locations",
	},
	FlagNoStoryline: {
		apply:     func(comic *Comic, value bool) { comic.HasNoStoryline = value },
		trueText:  "to have no storylines",
		falseText: "to have storylines",
	},
	FlagNoTitle: {
		apply:     func(comic *Comic, value bool) { comic.HasNoTitle = value },
		trueText:  "to have no title",
		falseText: "to have a title",
	},
	FlagNoTagline: {
		apply:     func(comic *Comic, value bool) { comic.HasNoTagline = value },
		trueText:  "to have no tagline",
		falseText: "to have a tagline",
	},
}

// applyFlag mutates the comic and returns the audit phrase for the value.
// An unknown flag reaching this point is a programmer error: shape validation
// has already constrained the wire name.
func applyFlag(comic *Comic, flag Flag, value bool) (string, error) {
	spec, ok := flagTable[flag]
	if !ok {
		return "", apperr.Invariant("unrecognized comic flag: " + string(flag))
	}

	spec.apply(comic, value)
	if value {
		return spec.trueText, nil
	}
	return spec.falseText, nil
}
