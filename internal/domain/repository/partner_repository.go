package repository

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrPartnerNotFound = errors.New("partner not found")

type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
	List(ctx context.Context) ([]*entity.Partner, error)
	Create(ctx context.Context, partner *entity.Partner) error
	Update(ctx context.Context, partner *entity.Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
