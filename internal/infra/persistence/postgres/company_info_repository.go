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

type companyInfoRepository struct {
	db *gorm.DB
}

// NewCompanyInfoRepository is the constructor for companyInfoRepository.
func NewCompanyInfoRepository(db *gorm.DB) repository.CompanyInfoRepository {
	return &companyInfoRepository{db: db}
}

func (repo *companyInfoRepository) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	var infoM model.CompanyInfoModel
	err := repo.db.WithContext(ctx).
		Where("singleton = ?", model.CompanyInfoSingletonKey).
		First(&infoM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCompanyInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to load company info")
	}

	return toCompanyInfoDomain(&infoM), nil
}

// Create inserts the singleton. The unique index on 'singleton' rejects a second row.
func (repo *companyInfoRepository) Create(ctx context.Context, info *entity.CompanyInfo) error {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}

	infoM := fromCompanyInfoDomain(info)
	if err := repo.db.WithContext(ctx).Create(infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCompanyInfoExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company info")
	}

	info.CreatedAt = infoM.CreatedAt
	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

func (repo *companyInfoRepository) Update(ctx context.Context, info *entity.CompanyInfo) error {
	infoM := fromCompanyInfoDomain(info)

	result := repo.db.WithContext(ctx).
		Model(infoM).
		Select("*").
		Omit("id", "singleton", "created_at").
		Updates(infoM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update company info")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyInfoNotFound
	}

	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

func toCompanyInfoDomain(data *model.CompanyInfoModel) *entity.CompanyInfo {
	if data == nil {
		return nil
	}

	address := data.Address.Data()
	phone := data.Phone.Data()
	email := data.Email.Data()
	hours := data.BusinessHours.Data()
	social := data.SocialMedia.Data()

	info := &entity.CompanyInfo{
		ID: data.ID,
		Address: entity.CompanyAddress{
			Street:      address.Street,
			Suite:       address.Suite,
			City:        address.City,
			Country:     address.Country,
			FullAddress: address.FullAddress,
		},
		Phone: entity.CompanyPhone{Main: phone.Main, Support: phone.Support},
		Email: entity.CompanyEmail{
			General: email.General,
			Sales:   email.Sales,
			Support: email.Support,
		},
		BusinessHours: entity.BusinessHours{Weekdays: hours.Weekdays, Weekend: hours.Weekend},
		SocialMedia: entity.SocialMedia{
			Facebook:  social.Facebook,
			Twitter:   social.Twitter,
			Instagram: social.Instagram,
			LinkedIn:  social.LinkedIn,
		},
		ThemeColor: data.ThemeColor,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Logo != nil {
		logo := toAssetDomain(data.Logo.Data())
		info.Logo = &logo
	}

	return info
}

func fromCompanyInfoDomain(data *entity.CompanyInfo) *model.CompanyInfoModel {
	if data == nil {
		return nil
	}

	infoM := &model.CompanyInfoModel{
		ID:        data.ID,
		Singleton: model.CompanyInfoSingletonKey,
		Address: datatypes.NewJSONType(model.CompanyAddressDocument{
			Street:      data.Address.Street,
			Suite:       data.Address.Suite,
			City:        data.Address.City,
			Country:     data.Address.Country,
			FullAddress: data.Address.FullAddress,
		}),
		Phone: datatypes.NewJSONType(model.CompanyPhoneDocument{
			Main:    data.Phone.Main,
			Support: data.Phone.Support,
		}),
		Email: datatypes.NewJSONType(model.CompanyEmailDocument{
			General: data.Email.General,
			Sales:   data.Email.Sales,
			Support: data.Email.Support,
		}),
		BusinessHours: datatypes.NewJSONType(model.BusinessHoursDocument{
			Weekdays: data.BusinessHours.Weekdays,
			Weekend:  data.BusinessHours.Weekend,
		}),
		SocialMedia: datatypes.NewJSONType(model.SocialMediaDocument{
			Facebook:  data.SocialMedia.Facebook,
			Twitter:   data.SocialMedia.Twitter,
			Instagram: data.SocialMedia.Instagram,
			LinkedIn:  data.SocialMedia.LinkedIn,
		}),
		ThemeColor: data.ThemeColor,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Logo != nil {
		logo := datatypes.NewJSONType(fromAssetDomain(*data.Logo))
		infoM.Logo = &logo
	}

	return infoM
}
