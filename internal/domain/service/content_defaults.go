package service

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"
)

// ErrNoDefaultContent is returned when no default payload exists for a content type.
var ErrNoDefaultContent = errors.New("no default content")

// ContentDefaults supplies the payload used to seed a missing content record.
type ContentDefaults interface {
	// Load tries the language-specific default first, then the generic one.
	Load(ctx context.Context, contentType entity.ContentType, language entity.Language) (map[string]any, error)
}
