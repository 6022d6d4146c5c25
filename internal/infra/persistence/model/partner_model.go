package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PartnerModel mirrors the 'partners' table.
type PartnerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	LocalizedName string    `gorm:"type:varchar(255)"`
	Description   string    `gorm:"type:text;not null"`
	Website       string    `gorm:"type:text"`
	Logo          datatypes.JSONType[AssetDocument]
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PartnerModel) TableName() string {
	return "partners"
}
