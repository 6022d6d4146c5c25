package usecase

import (
	"context"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactUsecase handles contact form submissions and their review.
type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactInput) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
