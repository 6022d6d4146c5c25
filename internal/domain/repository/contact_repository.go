package repository

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// List returns all messages, newest first.
	List(ctx context.Context) ([]*entity.Contact, error)

	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
