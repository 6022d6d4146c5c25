package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompanyInfoSingletonKey is the only value the unique 'singleton' column may hold.
const CompanyInfoSingletonKey = "company"

// CompanyInfoModel mirrors the 'company_info' table. Nested groups are jsonb columns.
type CompanyInfoModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Singleton     string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Logo          *datatypes.JSONType[AssetDocument]
	Address       datatypes.JSONType[CompanyAddressDocument]
	Phone         datatypes.JSONType[CompanyPhoneDocument]
	Email         datatypes.JSONType[CompanyEmailDocument]
	BusinessHours datatypes.JSONType[BusinessHoursDocument]
	SocialMedia   datatypes.JSONType[SocialMediaDocument]
	ThemeColor    string `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CompanyInfoModel) TableName() string {
	return "company_info"
}

type CompanyAddressDocument struct {
	Street      string `json:"street"`
	Suite       string `json:"suite"`
	City        string `json:"city"`
	Country     string `json:"country"`
	FullAddress string `json:"fullAddress"`
}

type CompanyPhoneDocument struct {
	Main    string `json:"main"`
	Support string `json:"support"`
}

type CompanyEmailDocument struct {
	General string `json:"general"`
	Sales   string `json:"sales"`
	Support string `json:"support"`
}

type BusinessHoursDocument struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

type SocialMediaDocument struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}
