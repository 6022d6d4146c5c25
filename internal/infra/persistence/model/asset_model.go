package model

import "github.com/google/uuid"

// AssetDocument is the JSON shape of an embedded asset reference.
type AssetDocument struct {
	ID              uuid.UUID `json:"id"`
	URL             string    `json:"url"`
	DeletionHandle  string    `json:"deletionHandle"`
	DisplayMetadata string    `json:"displayMetadata,omitempty"`
	IsMain          bool      `json:"isMain"`
}
