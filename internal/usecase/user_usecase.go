package usecase

import (
	"context"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// UserUsecase covers back-office accounts.
type UserUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
}
