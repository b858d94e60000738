package schema

// ComicTable represents the 'comic' table
type ComicTable struct {
	Table                 string
	ID                    string
	Title                 string
	Tagline               string
	PublishDate           string
	IsAccuratePublishDate string
	IsGuestComic          string
	IsNonCanon            string
	HasNoCast             string
	HasNoLocation         string
	HasNoStoryline        string
	HasNoTitle            string
	HasNoTagline          string
}

// Comic is the schema definition for the comic table. Comic ids are assigned
// externally from the archive's canonical numbering, never generated.
var Comic = ComicTable{
	Table:                 "comic",
	ID:                    "id",
	Title:                 "title",
	Tagline:               "tagline",
	PublishDate:           "publish_date",
	IsAccuratePublishDate: "is_accurate_publish_date",
	IsGuestComic:          "is_guest_comic",
	IsNonCanon:            "is_non_canon",
	HasNoCast:             "has_no_cast",
	HasNoLocation:         "has_no_location",
	HasNoStoryline:        "has_no_storyline",
	HasNoTitle:            "has_no_title",
	HasNoTagline:          "has_no_tagline",
}
