package usecase

import (
	"context"

	"showcase/internal/domain/entity"
)

// InitStatus describes what Initialize did for one (type, language) pair.
type InitStatus string

const (
	InitStatusCreated       InitStatus = "created"
	InitStatusAlreadyExists InitStatus = "already exists"
	InitStatusMigrated      InitStatus = "migrated"
	InitStatusUpdated       InitStatus = "updated"
	InitStatusNoDefault     InitStatus = "no default"
	InitStatusFailed        InitStatus = "error"
)

type ContentInitResult struct {
	Type     entity.ContentType `json:"type"`
	Language entity.Language    `json:"language"`
	Status   InitStatus         `json:"status"`
	Error    string             `json:"error,omitempty"`
}

// ContentUsecase resolves and edits localized content blocks.
type ContentUsecase interface {
	// Resolve returns the block for (type, language), migrating a legacy row or
	// seeding from defaults when no exact record exists.
	Resolve(ctx context.Context, contentType, language string) (*entity.Content, error)

	// Update replaces the block data verbatim, creating the record when missing.
	Update(ctx context.Context, contentType, language string, data map[string]any) (*entity.Content, error)

	// Initialize resolves every (type, language) pair and reports the outcome of each.
	Initialize(ctx context.Context) []ContentInitResult
}

// ContentMaintenanceUsecase holds the operator tasks run from the command line.
type ContentMaintenanceUsecase interface {
	// LoadDefaults upserts every default payload, overwriting existing data.
	LoadDefaults(ctx context.Context) ([]ContentInitResult, error)

	// MigrateLegacy assigns the default language to every record without one.
	MigrateLegacy(ctx context.Context) (int, error)

	// DuplicateLanguage copies records from one language to another where the target is missing.
	DuplicateLanguage(ctx context.Context, from, to entity.Language) (int, error)
}
