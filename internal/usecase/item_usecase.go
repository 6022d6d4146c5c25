package usecase

import (
	"context"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemInput carries editable text fields. On update, empty fields keep their current value.
type ItemInput struct {
	Name                 string
	LocalizedName        string
	Description          string
	LocalizedDescription string
	Category             string
}

// ItemQuery narrows a listing.
type ItemQuery struct {
	Keyword  string
	Category string
}

// ItemMutationOutput returns the saved item with any image uploads that failed.
type ItemMutationOutput struct {
	Item          *entity.Item
	FailedUploads []FileFailure
}

// ItemUsecase manages products or services together with their images and catalog.
type ItemUsecase interface {
	List(ctx context.Context, query ItemQuery) ([]*entity.Item, error)
	Top(ctx context.Context) ([]*entity.Item, error)
	Categories(ctx context.Context) ([]string, error)
	WithCatalogs(ctx context.Context) ([]*entity.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetCatalog(ctx context.Context, id uuid.UUID) (*entity.CatalogAsset, error)

	Create(ctx context.Context, input *ItemInput, images []*UploadedFile, catalog *UploadedFile) (*ItemMutationOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *ItemInput, images []*UploadedFile, catalog *UploadedFile) (*ItemMutationOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddImages(ctx context.Context, id uuid.UUID, images []*UploadedFile) (*ItemMutationOutput, error)
	RemoveImage(ctx context.Context, id, imageID uuid.UUID) (*entity.Item, error)
	SetMainImage(ctx context.Context, id, imageID uuid.UUID) (*entity.Item, error)
	UploadCatalog(ctx context.Context, id uuid.UUID, catalog *UploadedFile) (*entity.Item, error)
	DeleteCatalog(ctx context.Context, id uuid.UUID) (*entity.Item, error)
}

// ProductUsecase is the ItemUsecase for products.
type ProductUsecase interface {
	ItemUsecase
}

// ServiceUsecase is the ItemUsecase for services.
type ServiceUsecase interface {
	ItemUsecase
}
