package schema

// TokenTable represents the 'token' table. One boolean grant column per
// capability bit; rows are provisioned out-of-band by an administrator.
type TokenTable struct {
	Table                  string
	ID                     string
	Identifier             string
	CanAddItemToComic      string
	CanRemoveItemFromComic string
	CanChangeComicData     string
	CanAddImageToItem      string
	CanRemoveImageFromItem string
	CanChangeItemData      string
}

// Token is the schema definition for the token table
var Token = TokenTable{
	Table:                  "token",
	ID:                     "id",
	Identifier:             "identifier",
	CanAddItemToComic:      "can_add_item_to_comic",
	CanRemoveItemFromComic: "can_remove_item_from_comic",
	CanChangeComicData:     "can_change_comic_data",
	CanAddImageToItem:      "can_add_image_to_item",
	CanRemoveImageFromItem: "can_remove_image_from_item",
	CanChangeItemData:      "can_change_item_data",
}
