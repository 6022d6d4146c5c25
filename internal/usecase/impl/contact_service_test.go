package impl

import (
	"context"
	"testing"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	mockRepo "showcase/internal/mocks/repository"
	mockSvc "showcase/internal/mocks/service"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service   usecase.ContactUsecase
	repo      *mockRepo.MockContactRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	repo := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return contactServiceFixtures{
		service:   NewContactService(ContactServiceParams{Repo: repo, Publisher: publisher, Logger: newDiscardLogger()}),
		repo:      repo,
		publisher: publisher,
	}
}

func validContactInput() *usecase.ContactInput {
	return &usecase.ContactInput{Name: "Sara", Email: "sara@example.com", Phone: "+966500000000", Message: "Need a quote"}
}

func TestContactService_Submit_PublishesEvent(t *testing.T) {
	fx := createTestContactService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil).Once()
	fx.publisher.EXPECT().PublishContactReceived(ctx, mock.MatchedBy(func(e *service.ContactReceivedEvent) bool {
		return e.RequestID == "req-42" && e.Email == "sara@example.com" && e.Message == "Need a quote" && !e.ReceivedAt.IsZero()
	})).Return(nil).Once()

	contact, err := fx.service.Submit(ctx, validContactInput())

	require.NoError(t, err)
	assert.False(t, contact.IsRead)
	assert.NotEqual(t, uuid.Nil, contact.ID)
}

func TestContactService_Submit_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil).Once()
	fx.publisher.EXPECT().PublishContactReceived(ctx, mock.Anything).Return(errors.New("topic not found")).Once()

	contact, err := fx.service.Submit(ctx, validContactInput())

	require.NoError(t, err)
	assert.Equal(t, "Sara", contact.Name)
}

func TestContactService_Submit_AllFieldsRequired(t *testing.T) {
	fx := createTestContactService(t)
	input := validContactInput()
	input.Phone = "  "

	_, err := fx.service.Submit(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContactService_MarkRead(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().MarkRead(ctx, id).Return(nil).Once()
	fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.Contact{ID: id, IsRead: true}, nil).Once()

	contact, err := fx.service.MarkRead(ctx, id)

	require.NoError(t, err)
	assert.True(t, contact.IsRead)
}

func TestContactService_NotFound(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().MarkRead(ctx, id).Return(repository.ErrContactNotFound).Once()
	fx.repo.EXPECT().Delete(ctx, id).Return(repository.ErrContactNotFound).Once()

	_, err := fx.service.MarkRead(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)

	err = fx.service.Delete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}
