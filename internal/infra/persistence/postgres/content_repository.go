package postgres

import (
	"context"
	"time"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/errors"
	"showcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) FindByTypeAndLanguage(ctx context.Context, contentType entity.ContentType, language entity.Language) (*entity.Content, error) {
	var contentM model.ContentModel
	err := repo.db.WithContext(ctx).
		Where("content_type = ? AND language = ?", string(contentType), string(language)).
		First(&contentM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s content in %s", contentType, language)
	}

	return toContentDomain(&contentM), nil
}

func (repo *contentRepository) FindLegacy(ctx context.Context, contentType entity.ContentType) (*entity.Content, error) {
	var contentM model.ContentModel
	err := repo.db.WithContext(ctx).
		Where("content_type = ? AND language IS NULL", string(contentType)).
		First(&contentM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find legacy %s content", contentType)
	}

	return toContentDomain(&contentM), nil
}

func (repo *contentRepository) ListLegacy(ctx context.Context) ([]*entity.Content, error) {
	return repo.list(repo.db.WithContext(ctx).Where("language IS NULL"))
}

func (repo *contentRepository) ListByLanguage(ctx context.Context, language entity.Language) ([]*entity.Content, error) {
	return repo.list(repo.db.WithContext(ctx).Where("language = ?", string(language)))
}

func (repo *contentRepository) list(q *gorm.DB) ([]*entity.Content, error) {
	var contentsM []model.ContentModel
	if err := q.Order("content_type").Find(&contentsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list content")
	}

	contents := make([]*entity.Content, 0, len(contentsM))
	for i := range contentsM {
		contents = append(contents, toContentDomain(&contentsM[i]))
	}

	return contents, nil
}

func (repo *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}

	contentM := fromContentDomain(content)
	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrContentExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	content.CreatedAt = contentM.CreatedAt
	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

func (repo *contentRepository) Update(ctx context.Context, content *entity.Content) error {
	contentM := fromContentDomain(content)

	result := repo.db.WithContext(ctx).
		Model(contentM).
		Select("language", "data", "updated_at").
		Updates(contentM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrContentExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

func (repo *contentRepository) ClaimLegacy(ctx context.Context, content *entity.Content, language entity.Language) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ? AND language IS NULL", content.ID).
		Updates(map[string]any{
			"language":   string(language),
			"updated_at": now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrContentExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim legacy content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	lang := language
	content.Language = &lang
	content.UpdatedAt = now

	return nil
}

func toContentDomain(data *model.ContentModel) *entity.Content {
	if data == nil {
		return nil
	}

	content := &entity.Content{
		ID:        data.ID,
		Type:      entity.ContentType(data.ContentType),
		Data:      map[string]any(data.Data),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Language != nil {
		lang := entity.Language(*data.Language)
		content.Language = &lang
	}

	return content
}

func fromContentDomain(data *entity.Content) *model.ContentModel {
	if data == nil {
		return nil
	}

	contentM := &model.ContentModel{
		ID:          data.ID,
		ContentType: string(data.Type),
		Data:        datatypes.JSONMap(data.Data),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Language != nil {
		lang := string(*data.Language)
		contentM.Language = &lang
	}

	return contentM
}
