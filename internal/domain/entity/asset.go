// Package entity contains the core business objects of the project.
package entity

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetReference points at a binary stored in the media store.
// It is embedded in its owning record and has no lifecycle of its own.
type AssetReference struct {
	ID              uuid.UUID // Stable identifier so routes can address a single image.
	URL             string    // Public URL served to clients.
	DeletionHandle  string    // Opaque key the media store needs to delete the object.
	DisplayMetadata string    // Optional alt text or caption.
	IsMain          bool      // Marks the primary image of a record.
}

// CatalogKind is the document format of a catalog attachment.
type CatalogKind string

const (
	CatalogKindPDF  CatalogKind = "pdf"
	CatalogKindDOC  CatalogKind = "doc"
	CatalogKindDOCX CatalogKind = "docx"
	CatalogKindPPT  CatalogKind = "ppt"
	CatalogKindPPTX CatalogKind = "pptx"
	CatalogKindXLS  CatalogKind = "xls"
	CatalogKindXLSX CatalogKind = "xlsx"
)

// CatalogKindFromFileName derives the catalog kind from a file extension.
// ok is false when the extension is not an accepted document format.
func CatalogKindFromFileName(name string) (CatalogKind, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch kind := CatalogKind(ext); kind {
	case CatalogKindPDF, CatalogKindDOC, CatalogKindDOCX,
		CatalogKindPPT, CatalogKindPPTX, CatalogKindXLS, CatalogKindXLSX:
		return kind, true
	default:
		return "", false
	}
}

// CatalogAsset is a downloadable document attached to a product or service.
type CatalogAsset struct {
	AssetReference
	FileKind         CatalogKind
	OriginalFileName string
	UploadedAt       time.Time
}
