package repository

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"
)

var (
	ErrContentNotFound = errors.New("content not found")
	// ErrContentExists signals a violated (type, language) or legacy-per-type uniqueness rule.
	ErrContentExists = errors.New("content already exists")
)

// ContentRepository persists localized content blocks.
type ContentRepository interface {
	// FindByTypeAndLanguage returns the record for an exact (type, language) pair.
	FindByTypeAndLanguage(ctx context.Context, contentType entity.ContentType, language entity.Language) (*entity.Content, error)

	// FindLegacy returns the record of the given type that has no language.
	FindLegacy(ctx context.Context, contentType entity.ContentType) (*entity.Content, error)

	// ListLegacy returns every record without a language.
	ListLegacy(ctx context.Context) ([]*entity.Content, error)

	// ListByLanguage returns every record in a language.
	ListByLanguage(ctx context.Context, language entity.Language) ([]*entity.Content, error)

	Create(ctx context.Context, content *entity.Content) error

	// ClaimLegacy assigns language to content only while the stored record is
	// still language-less. ErrContentNotFound means another writer claimed it.
	ClaimLegacy(ctx context.Context, content *entity.Content, language entity.Language) error

	// Update saves the language and data of an existing record.
	Update(ctx context.Context, content *entity.Content) error
}
