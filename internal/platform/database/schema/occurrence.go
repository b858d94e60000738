package schema

// OccurrenceTable represents the 'occurrence' join table. The (comic_id,
// item_id) pair is the primary key; an occurrence either exists or it doesn't.
type OccurrenceTable struct {
	Table   string
	ComicID string
	ItemID  string
}

// Occurrence is the schema definition for the occurrence table
var Occurrence = OccurrenceTable{
	Table:   "occurrence",
	ComicID: "comic_id",
	ItemID:  "item_id",
}
