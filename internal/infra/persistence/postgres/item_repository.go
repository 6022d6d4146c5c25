package postgres

import (
	"context"
	"strings"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/errors"
	"showcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// itemRepository serves both products and services; the two tables share one shape.
type itemRepository struct {
	db    *gorm.DB
	table string
	kind  entity.ItemKind
}

// NewProductRepository binds the item repository to the products table.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &itemRepository{db: db, table: model.ProductsTable, kind: entity.ItemKindProduct}
}

// NewServiceRepository binds the item repository to the services table.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &itemRepository{db: db, table: model.ServicesTable, kind: entity.ItemKindService}
}

func (repo *itemRepository) query(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.table)
}

func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	if err := repo.query(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", repo.kind)
	}

	return repo.toItemDomain(&itemM), nil
}

func (repo *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	q := repo.query(ctx)

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := "%" + escapeLike(keyword) + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.WithCatalog {
		q = q.Where("has_catalog = ?", true)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var itemsM []model.ItemModel
	if err := q.Order("created_at ASC").Find(&itemsM).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", repo.kind)
	}

	items := make([]*entity.Item, 0, len(itemsM))
	for i := range itemsM {
		items = append(items, repo.toItemDomain(&itemsM[i]))
	}

	return items, nil
}

func (repo *itemRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := repo.query(ctx).
		Where("category <> ''").
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s categories", repo.kind)
	}

	return categories, nil
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	itemM := fromItemDomain(item)
	if err := repo.query(ctx).Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "catalog fields are inconsistent")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+string(repo.kind))
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.query(ctx).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(itemM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "catalog fields are inconsistent")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+string(repo.kind))
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.query(ctx).Where("id = ?", id).Delete(&model.ItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+string(repo.kind))
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func (repo *itemRepository) toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	item := &entity.Item{
		ID:                   data.ID,
		Kind:                 repo.kind,
		Name:                 data.Name,
		LocalizedName:        data.LocalizedName,
		Description:          data.Description,
		LocalizedDescription: data.LocalizedDescription,
		Category:             data.Category,
		Images:               toAssetsDomain(data.Images.Data()),
		HasCatalog:           data.HasCatalog,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.HasCatalog && data.CatalogID != nil {
		catalog := &entity.CatalogAsset{
			AssetReference: entity.AssetReference{
				ID:             *data.CatalogID,
				URL:            data.CatalogURL,
				DeletionHandle: data.CatalogDeletionHandle,
			},
			FileKind:         entity.CatalogKind(data.CatalogFileKind),
			OriginalFileName: data.CatalogOriginalName,
		}
		if data.CatalogUploadedAt != nil {
			catalog.UploadedAt = *data.CatalogUploadedAt
		}
		item.Catalog = catalog
	}

	return item
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.ItemModel{
		ID:                   data.ID,
		Name:                 data.Name,
		LocalizedName:        data.LocalizedName,
		Description:          data.Description,
		LocalizedDescription: data.LocalizedDescription,
		Category:             data.Category,
		Images:               datatypes.NewJSONType(fromAssetsDomain(data.Images)),
		HasCatalog:           data.Catalog != nil,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if c := data.Catalog; c != nil {
		catalogID := c.ID
		uploadedAt := c.UploadedAt
		itemM.CatalogID = &catalogID
		itemM.CatalogURL = c.URL
		itemM.CatalogDeletionHandle = c.DeletionHandle
		itemM.CatalogFileKind = string(c.FileKind)
		itemM.CatalogOriginalName = c.OriginalFileName
		itemM.CatalogUploadedAt = &uploadedAt
	}

	return itemM
}

func toAssetDomain(data model.AssetDocument) entity.AssetReference {
	return entity.AssetReference{
		ID:              data.ID,
		URL:             data.URL,
		DeletionHandle:  data.DeletionHandle,
		DisplayMetadata: data.DisplayMetadata,
		IsMain:          data.IsMain,
	}
}

func fromAssetDomain(data entity.AssetReference) model.AssetDocument {
	return model.AssetDocument{
		ID:              data.ID,
		URL:             data.URL,
		DeletionHandle:  data.DeletionHandle,
		DisplayMetadata: data.DisplayMetadata,
		IsMain:          data.IsMain,
	}
}

func toAssetsDomain(docs []model.AssetDocument) []entity.AssetReference {
	refs := make([]entity.AssetReference, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, toAssetDomain(doc))
	}

	return refs
}

func fromAssetsDomain(refs []entity.AssetReference) []model.AssetDocument {
	docs := make([]model.AssetDocument, 0, len(refs))
	for _, ref := range refs {
		docs = append(docs, fromAssetDomain(ref))
	}

	return docs
}
