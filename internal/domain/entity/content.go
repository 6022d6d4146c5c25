package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType names a page-level content block.
type ContentType string

const (
	ContentTypeHome     ContentType = "home"
	ContentTypeAbout    ContentType = "about"
	ContentTypeServices ContentType = "services"
	ContentTypeProducts ContentType = "products"
	ContentTypePartners ContentType = "partners"
	ContentTypeGallery  ContentType = "gallery"
	ContentTypeContact  ContentType = "contact"
	ContentTypeFooter   ContentType = "footer"
)

// AllContentTypes lists every content type in display order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeHome,
		ContentTypeAbout,
		ContentTypeServices,
		ContentTypeProducts,
		ContentTypePartners,
		ContentTypeGallery,
		ContentTypeContact,
		ContentTypeFooter,
	}
}

func (t ContentType) IsValid() bool {
	for _, known := range AllContentTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// Language is the locale of a content record.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageAR Language = "AR"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = LanguageEN

// AllLanguages lists the supported locales.
func AllLanguages() []Language {
	return []Language{LanguageEN, LanguageAR}
}

// ParseLanguage accepts any letter case; an empty string yields the default.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return DefaultLanguage, true
	case LanguageEN:
		return LanguageEN, true
	case LanguageAR:
		return LanguageAR, true
	default:
		return "", false
	}
}

func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageAR
}

// Content is a localized, schema-free page block. Language is nil on rows
// written before content became bilingual.
type Content struct {
	ID        uuid.UUID
	Type      ContentType
	Language  *Language
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLegacy reports whether the record predates the language column.
func (c *Content) IsLegacy() bool {
	return c.Language == nil
}

// LanguageOrEmpty returns the language, or "" for legacy rows.
func (c *Content) LanguageOrEmpty() Language {
	if c.Language == nil {
		return ""
	}

	return *c.Language
}
