package postgres

import (
	"context"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/errors"
	"showcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}

	contactM := fromContactDomain(contact)
	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	contact.CreatedAt = contactM.CreatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&contactM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact message by id")
	}

	return toContactDomain(&contactM), nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	var contactsM []model.ContactModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&contactsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	contacts := make([]*entity.Contact, 0, len(contactsM))
	for i := range contactsM {
		contacts = append(contacts, toContactDomain(&contactsM[i]))
	}

	return contacts, nil
}

func (repo *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark contact message as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Message:   data.Message,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Message:   data.Message,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}
