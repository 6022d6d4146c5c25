package usecase

import (
	"context"

	"showcase/internal/domain/entity"
)

// CompanyInfoPatch is a partial update; nil or empty leaves keep their current value.
type CompanyInfoPatch struct {
	Address       *AddressPatch       `json:"address"`
	Phone         *PhonePatch         `json:"phone"`
	Email         *EmailPatch         `json:"email"`
	BusinessHours *BusinessHoursPatch `json:"businessHours"`
	SocialMedia   *SocialMediaPatch   `json:"socialMedia"`
	ThemeColor    string              `json:"themeColor"`
	LogoAltText   string              `json:"logoAltText"`
}

type AddressPatch struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type PhonePatch struct {
	Main    string `json:"main"`
	Support string `json:"support"`
}

type EmailPatch struct {
	General string `json:"general" validate:"omitempty,email"`
	Sales   string `json:"sales" validate:"omitempty,email"`
	Support string `json:"support" validate:"omitempty,email"`
}

type BusinessHoursPatch struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

type SocialMediaPatch struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// CompanyInfoUsecase manages the singleton company record.
type CompanyInfoUsecase interface {
	// Get returns the record, creating it with defaults on first use.
	Get(ctx context.Context) (*entity.CompanyInfo, error)
	Update(ctx context.Context, patch *CompanyInfoPatch) (*entity.CompanyInfo, error)
	UpdateLogo(ctx context.Context, logo *UploadedFile) (*entity.CompanyInfo, error)

	// ContactCard renders the company contact details as a QR code PNG.
	ContactCard(ctx context.Context) ([]byte, error)
}
