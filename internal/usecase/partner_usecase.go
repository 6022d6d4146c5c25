package usecase

import (
	"context"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

type PartnerInput struct {
	Name          string
	LocalizedName string
	Description   string
	Website       string
}

// PartnerUsecase manages partners and their logos.
type PartnerUsecase interface {
	List(ctx context.Context) ([]*entity.Partner, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// Create requires a logo.
	Create(ctx context.Context, input *PartnerInput, logo *UploadedFile) (*entity.Partner, error)

	// Update keeps empty fields and replaces the logo only when one is given.
	Update(ctx context.Context, id uuid.UUID, input *PartnerInput, logo *UploadedFile) (*entity.Partner, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
