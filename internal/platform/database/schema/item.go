package schema

// ItemTable represents the 'item' table
type ItemTable struct {
	Table     string
	ID        string
	ShortName string
	Name      string
	Type      string
	Color     string
}

// Item is the schema definition for the item table
var Item = ItemTable{
	Table:     "item",
	ID:        "id",
	ShortName: "short_name",
	Name:      "name",
	Type:      "type",
	Color:     "color",
}

// ItemImageTable represents the 'item_image' table
type ItemImageTable struct {
	Table      string
	ID         string
	ItemID     string
	Image      string
	CRC32CHash string
}

// ItemImage is the schema definition for the item_image table
var ItemImage = ItemImageTable{
	Table:      "item_image",
	ID:         "id",
	ItemID:     "item_id",
	Image:      "image",
	CRC32CHash: "crc32c_hash",
}
