package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultLogoAltText = "Company Logo"

// CompanyInfo is the singleton record describing the business itself.
type CompanyInfo struct {
	ID            uuid.UUID
	Logo          *AssetReference
	Address       CompanyAddress
	Phone         CompanyPhone
	Email         CompanyEmail
	BusinessHours BusinessHours
	SocialMedia   SocialMedia
	ThemeColor    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CompanyAddress struct {
	Street      string `json:"street"`
	Suite       string `json:"suite"`
	City        string `json:"city"`
	Country     string `json:"country"`
	FullAddress string `json:"fullAddress"`
}

type CompanyPhone struct {
	Main    string `json:"main"`
	Support string `json:"support"`
}

type CompanyEmail struct {
	General string `json:"general"`
	Sales   string `json:"sales"`
	Support string `json:"support"`
}

type BusinessHours struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// NewDefaultCompanyInfo builds the record created on first read.
func NewDefaultCompanyInfo() *CompanyInfo {
	info := &CompanyInfo{
		Address: CompanyAddress{
			Street:  "123 Security Avenue",
			Suite:   "Suite 500",
			City:    "Riyadh",
			Country: "Saudi Arabia",
		},
		Phone: CompanyPhone{
			Main:    "+966 558 128 XXX",
			Support: "+966 558 128 XXX",
		},
		Email: CompanyEmail{
			General: "info@speedsafe.com",
			Sales:   "sales@speedsafe.com",
			Support: "support@speedsafe.com",
		},
		BusinessHours: BusinessHours{
			Weekdays: "Sunday - Thursday: 9:00 AM - 6:00 PM",
			Weekend:  "Friday - Saturday: Closed",
		},
		ThemeColor: "yellow",
	}
	info.RefreshFullAddress()

	return info
}

// RefreshFullAddress recomputes the derived address line. Called on every save.
func (c *CompanyInfo) RefreshFullAddress() {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Address.Street, c.Address.Suite, c.Address.City, c.Address.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	c.Address.FullAddress = strings.Join(parts, ", ")
}

// SetLogo replaces the logo and returns the previous one.
func (c *CompanyInfo) SetLogo(logo AssetReference) *AssetReference {
	if logo.DisplayMetadata == "" {
		logo.DisplayMetadata = defaultLogoAltText
	}
	previous := c.Logo
	c.Logo = &logo

	return previous
}
