package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind distinguishes the two catalog record types that share one shape.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// Item is a product or service offered by the business.
type Item struct {
	ID                   uuid.UUID
	Kind                 ItemKind
	Name                 string
	LocalizedName        string // Arabic name, optional.
	Description          string
	LocalizedDescription string // Arabic description, optional.
	Category             string
	Images               []AssetReference
	Catalog              *CatalogAsset
	HasCatalog           bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FindImage returns the index of the image with the given id, or -1.
func (it *Item) FindImage(imageID uuid.UUID) int {
	for i := range it.Images {
		if it.Images[i].ID == imageID {
			return i
		}
	}

	return -1
}

// MainImage returns the main image, if any.
func (it *Item) MainImage() (AssetReference, bool) {
	for _, img := range it.Images {
		if img.IsMain {
			return img, true
		}
	}

	return AssetReference{}, false
}

// AppendImages adds uploaded images. The first one becomes main only when
// the item had no images before the call.
func (it *Item) AppendImages(refs ...AssetReference) {
	if len(refs) == 0 {
		return
	}

	hadImages := len(it.Images) > 0
	for i := range refs {
		refs[i].IsMain = !hadImages && i == 0
	}
	it.Images = append(it.Images, refs...)
}

// RemoveImage detaches an image. When the removed image was main and others
// remain, the new first image is promoted.
func (it *Item) RemoveImage(imageID uuid.UUID) (AssetReference, bool) {
	idx := it.FindImage(imageID)
	if idx < 0 {
		return AssetReference{}, false
	}

	removed := it.Images[idx]
	it.Images = append(it.Images[:idx], it.Images[idx+1:]...)

	if removed.IsMain && len(it.Images) > 0 {
		it.Images[0].IsMain = true
	}

	return removed, true
}

// SetMainImage marks exactly one image as main. It leaves the item untouched
// and returns false when the id is unknown.
func (it *Item) SetMainImage(imageID uuid.UUID) bool {
	if it.FindImage(imageID) < 0 {
		return false
	}

	for i := range it.Images {
		it.Images[i].IsMain = it.Images[i].ID == imageID
	}

	return true
}

// AttachCatalog replaces the catalog and returns the previous one, if any.
func (it *Item) AttachCatalog(catalog *CatalogAsset) *CatalogAsset {
	previous := it.Catalog
	it.Catalog = catalog
	it.HasCatalog = catalog != nil

	return previous
}

// DetachCatalog clears the catalog and returns it.
func (it *Item) DetachCatalog() *CatalogAsset {
	return it.AttachCatalog(nil)
}

// AssetHandles lists the deletion handles of every asset the item owns.
func (it *Item) AssetHandles() []string {
	handles := make([]string, 0, len(it.Images)+1)
	for _, img := range it.Images {
		handles = append(handles, img.DeletionHandle)
	}
	if it.Catalog != nil {
		handles = append(handles, it.Catalog.DeletionHandle)
	}

	return handles
}
