package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is a business partner shown on the partners page. A logo is required.
type Partner struct {
	ID            uuid.UUID
	Name          string
	LocalizedName string
	Description   string
	Website       string
	Logo          AssetReference
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
