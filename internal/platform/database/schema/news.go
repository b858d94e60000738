package schema

// NewsTable represents the 'news' table (one row per comic, scraped text)
type NewsTable struct {
	Table        string
	ComicID      string
	LastUpdated  string
	NewsText     string
	UpdateFactor string
	IsLocked     string
}

// News is the schema definition for the news table
var News = NewsTable{
	Table:        "news",
	ComicID:      "comic_id",
	LastUpdated:  "last_updated",
	NewsText:     "news_text",
	UpdateFactor: "update_factor",
	IsLocked:     "is_locked",
}
