package postgres

import (
	"context"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/errors"
	"showcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partnerM model.PartnerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&partnerM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

func (repo *partnerRepository) List(ctx context.Context) ([]*entity.Partner, error) {
	var partnersM []model.PartnerModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&partnersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnersM))
	for i := range partnersM {
		partners = append(partners, toPartnerDomain(&partnersM[i]))
	}

	return partners, nil
}

func (repo *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	if partner.ID == uuid.Nil {
		partner.ID = uuid.New()
	}

	partnerM := fromPartnerDomain(partner)
	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

func (repo *partnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	result := repo.db.WithContext(ctx).
		Model(partnerM).
		Select("*").
		Omit("id", "created_at").
		Updates(partnerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

func (repo *partnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PartnerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:            data.ID,
		Name:          data.Name,
		LocalizedName: data.LocalizedName,
		Description:   data.Description,
		Website:       data.Website,
		Logo:          toAssetDomain(data.Logo.Data()),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:            data.ID,
		Name:          data.Name,
		LocalizedName: data.LocalizedName,
		Description:   data.Description,
		Website:       data.Website,
		Logo:          datatypes.NewJSONType(fromAssetDomain(data.Logo)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
