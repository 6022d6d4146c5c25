package service

import (
	"context"

	"showcase/internal/domain/entity"
)

// ContentCache keeps resolved content blocks close to the API. Implementations
// swallow their own failures; a miss is always safe.
type ContentCache interface {
	Get(ctx context.Context, contentType entity.ContentType, language entity.Language) (*entity.Content, bool)
	Set(ctx context.Context, content *entity.Content)
	Invalidate(ctx context.Context, contentType entity.ContentType, language entity.Language)
}
