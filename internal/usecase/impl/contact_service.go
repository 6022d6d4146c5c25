package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type contactService struct {
	repo      repository.ContactRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

type ContactServiceParams struct {
	fx.In

	Repo      repository.ContactRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		repo:      params.Repo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the message and then announces it. A publish failure is
// logged and never fails the submission.
func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*entity.Contact, error) {
	if input == nil ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please fill all required fields")
	}

	contact := &entity.Contact{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Message: input.Message,
	}

	if err := srv.repo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to save contact message")
	}

	event := &service.ContactReceivedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ContactID:  contact.ID.String(),
		Name:       contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Message:    contact.Message,
		ReceivedAt: receivedAt(contact),
	}
	if err := srv.publisher.PublishContactReceived(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact received event",
			slog.String("contactID", event.ContactID),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Contact message received", slog.String("contactID", event.ContactID))

	return contact, nil
}

func receivedAt(contact *entity.Contact) time.Time {
	if contact.CreatedAt.IsZero() {
		return time.Now().UTC()
	}

	return contact.CreatedAt
}

func (srv *contactService) List(ctx context.Context) ([]*entity.Contact, error) {
	return srv.repo.List(ctx)
}

func (srv *contactService) Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact message")
	}

	return contact, nil
}

func (srv *contactService) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	err := srv.repo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark contact message as read")
	}

	return srv.Get(ctx, id)
}

func (srv *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrContactNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete contact message")
	}

	return nil
}
