package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentModel mirrors the 'content' table. Language is NULL on legacy rows.
type ContentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContentType string    `gorm:"type:varchar(20);not null"`
	Language    *string   `gorm:"type:varchar(2)"`
	Data        datatypes.JSONMap
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ContentModel) TableName() string {
	return "content"
}
