package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProductsTable = "products"
	ServicesTable = "services"
)

// ItemModel mirrors both the 'products' and 'services' tables; the repository
// selects the table explicitly. Images are stored as a jsonb array.
type ItemModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	LocalizedName        string    `gorm:"type:varchar(255)"`
	Description          string    `gorm:"type:text;not null"`
	LocalizedDescription string    `gorm:"type:text"`
	Category             string    `gorm:"type:varchar(100);index"`
	Images               datatypes.JSONType[[]AssetDocument]

	HasCatalog            bool       `gorm:"not null;default:false"`
	CatalogID             *uuid.UUID `gorm:"type:uuid"`
	CatalogURL            string     `gorm:"type:text"`
	CatalogDeletionHandle string     `gorm:"type:text"`
	CatalogFileKind       string     `gorm:"type:varchar(10)"`
	CatalogOriginalName   string     `gorm:"type:varchar(255)"`
	CatalogUploadedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
