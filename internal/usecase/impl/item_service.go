package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/constants"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// itemService implements ItemUsecase for one item kind.
type itemService struct {
	kind     entity.ItemKind
	folder   string
	notFound *domainerrors.BaseError
	repo     repository.ItemRepository
	assets   *assetLifecycle
	logger   *slog.Logger
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Repo   repository.ProductRepository
	Store  service.MediaStore
	Logger *slog.Logger
}

// ServiceOfferingParams holds dependencies for the service-offering service, injected by Fx.
type ServiceOfferingParams struct {
	fx.In

	Repo   repository.ServiceRepository
	Store  service.MediaStore
	Logger *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return newItemService(entity.ItemKindProduct, params.Repo, params.Store, params.Logger)
}

func NewServiceOfferingService(params ServiceOfferingParams) usecase.ServiceUsecase {
	return newItemService(entity.ItemKindService, params.Repo, params.Store, params.Logger)
}

func newItemService(kind entity.ItemKind, repo repository.ItemRepository, store service.MediaStore, logger *slog.Logger) *itemService {
	srv := &itemService{
		kind:     kind,
		folder:   constants.FolderProducts,
		notFound: domainerrors.ErrProductNotFound,
		repo:     repo,
		assets:   newAssetLifecycle(store, logger),
		logger:   logger,
	}
	if kind == entity.ItemKindService {
		srv.folder = constants.FolderServices
		srv.notFound = domainerrors.ErrServiceNotFound
	}

	return srv
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("kind", string(srv.kind)))
}

func (srv *itemService) List(ctx context.Context, query usecase.ItemQuery) ([]*entity.Item, error) {
	return srv.repo.List(ctx, repository.ItemFilter{
		Keyword:  query.Keyword,
		Category: query.Category,
	})
}

func (srv *itemService) Top(ctx context.Context) ([]*entity.Item, error) {
	return srv.repo.List(ctx, repository.ItemFilter{Limit: constants.TopLimit})
}

func (srv *itemService) Categories(ctx context.Context) ([]string, error) {
	return srv.repo.Categories(ctx)
}

func (srv *itemService) WithCatalogs(ctx context.Context) ([]*entity.Item, error) {
	return srv.repo.List(ctx, repository.ItemFilter{WithCatalog: true})
}

func (srv *itemService) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return srv.find(ctx, id)
}

func (srv *itemService) GetCatalog(ctx context.Context, id uuid.UUID) (*entity.CatalogAsset, error) {
	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Catalog == nil {
		return nil, domainerrors.ErrCatalogNotFound
	}

	return item.Catalog, nil
}

// Create uploads the images one by one, then the catalog, then saves the
// record. A failed image is reported; a failed catalog aborts the create.
func (srv *itemService) Create(
	ctx context.Context,
	input *usecase.ItemInput,
	images []*usecase.UploadedFile,
	catalog *usecase.UploadedFile,
) (*usecase.ItemMutationOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and description are required")
	}
	if catalog != nil {
		if _, err := validateCatalog(catalog); err != nil {
			return nil, err
		}
	}

	item := &entity.Item{
		ID:                   uuid.New(),
		Kind:                 srv.kind,
		Name:                 strings.TrimSpace(input.Name),
		LocalizedName:        input.LocalizedName,
		Description:          input.Description,
		LocalizedDescription: input.LocalizedDescription,
		Category:             input.Category,
	}

	failures := srv.assets.addImages(ctx, item, images, srv.folder)

	if catalog != nil {
		if _, err := srv.assets.setCatalog(ctx, item, catalog); err != nil {
			srv.assets.release(ctx, item.AssetHandles()...)

			return nil, errors.Wrap(err, "failed to upload catalog")
		}
	}

	if err := srv.repo.Create(ctx, item); err != nil {
		srv.assets.release(ctx, item.AssetHandles()...)

		return nil, errors.Wrapf(err, "failed to create %s", srv.kind)
	}

	srv.log(ctx).Info("Item created",
		slog.String("id", item.ID.String()),
		slog.Int("images", len(item.Images)),
		slog.Int("failedUploads", len(failures)))

	return &usecase.ItemMutationOutput{Item: item, FailedUploads: failures}, nil
}

// Update keeps every text field that arrives empty, appends new images and
// replaces the catalog when one is given.
func (srv *itemService) Update(
	ctx context.Context,
	id uuid.UUID,
	input *usecase.ItemInput,
	images []*usecase.UploadedFile,
	catalog *usecase.UploadedFile,
) (*usecase.ItemMutationOutput, error) {
	if catalog != nil {
		if _, err := validateCatalog(catalog); err != nil {
			return nil, err
		}
	}

	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	applyItemInput(item, input)
	uploadedBefore := len(item.Images)
	failures := srv.assets.addImages(ctx, item, images, srv.folder)

	var superseded string
	if catalog != nil {
		superseded, err = srv.assets.setCatalog(ctx, item, catalog)
		if err != nil {
			srv.assets.release(ctx, imageHandles(item.Images[uploadedBefore:])...)

			return nil, errors.Wrap(err, "failed to upload catalog")
		}
	}

	if err := srv.save(ctx, item); err != nil {
		fresh := imageHandles(item.Images[uploadedBefore:])
		if catalog != nil && item.Catalog != nil {
			fresh = append(fresh, item.Catalog.DeletionHandle)
		}
		srv.assets.release(ctx, fresh...)

		return nil, err
	}

	srv.assets.release(ctx, superseded)

	return &usecase.ItemMutationOutput{Item: item, FailedUploads: failures}, nil
}

// Delete releases every image and the catalog, then removes the record even
// when some remote deletes failed.
func (srv *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	outcomes := srv.assets.release(ctx, item.AssetHandles()...)

	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return srv.notFound
		}

		return errors.Wrapf(err, "failed to delete %s", srv.kind)
	}

	srv.log(ctx).Info("Item deleted",
		slog.String("id", id.String()),
		slog.Int("assets", len(outcomes)),
		slog.Int("failedDeletes", len(usecase.Failed(outcomes))))

	return nil
}

func (srv *itemService) AddImages(ctx context.Context, id uuid.UUID, images []*usecase.UploadedFile) (*usecase.ItemMutationOutput, error) {
	if len(images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no images uploaded")
	}

	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	uploadedBefore := len(item.Images)
	failures := srv.assets.addImages(ctx, item, images, srv.folder)
	if len(item.Images) == uploadedBefore {
		return &usecase.ItemMutationOutput{Item: item, FailedUploads: failures}, nil
	}

	if err := srv.save(ctx, item); err != nil {
		srv.assets.release(ctx, imageHandles(item.Images[uploadedBefore:])...)

		return nil, err
	}

	return &usecase.ItemMutationOutput{Item: item, FailedUploads: failures}, nil
}

func (srv *itemService) RemoveImage(ctx context.Context, id, imageID uuid.UUID) (*entity.Item, error) {
	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	handle, err := srv.assets.removeImage(item, imageID)
	if err != nil {
		return nil, err
	}

	if err := srv.save(ctx, item); err != nil {
		return nil, err
	}
	srv.assets.release(ctx, handle)

	return item, nil
}

func (srv *itemService) SetMainImage(ctx context.Context, id, imageID uuid.UUID) (*entity.Item, error) {
	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.assets.setMainImage(item, imageID); err != nil {
		return nil, err
	}

	if err := srv.save(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *itemService) UploadCatalog(ctx context.Context, id uuid.UUID, catalog *usecase.UploadedFile) (*entity.Item, error) {
	if _, err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	superseded, err := srv.assets.setCatalog(ctx, item, catalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload catalog")
	}

	if err := srv.save(ctx, item); err != nil {
		srv.assets.release(ctx, item.Catalog.DeletionHandle)

		return nil, err
	}
	srv.assets.release(ctx, superseded)

	return item, nil
}

func (srv *itemService) DeleteCatalog(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	handle, err := srv.assets.deleteCatalog(item)
	if err != nil {
		return nil, err
	}

	if err := srv.save(ctx, item); err != nil {
		return nil, err
	}
	srv.assets.release(ctx, handle)

	return item, nil
}

func (srv *itemService) find(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, srv.notFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", srv.kind)
	}

	return item, nil
}

func (srv *itemService) save(ctx context.Context, item *entity.Item) error {
	err := srv.repo.Update(ctx, item)
	if errors.Is(err, repository.ErrItemNotFound) {
		return srv.notFound
	}
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", srv.kind)
	}

	return nil
}

func applyItemInput(item *entity.Item, input *usecase.ItemInput) {
	if input == nil {
		return
	}
	if v := strings.TrimSpace(input.Name); v != "" {
		item.Name = v
	}
	if input.LocalizedName != "" {
		item.LocalizedName = input.LocalizedName
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.LocalizedDescription != "" {
		item.LocalizedDescription = input.LocalizedDescription
	}
	if input.Category != "" {
		item.Category = input.Category
	}
}

func imageHandles(images []entity.AssetReference) []string {
	handles := make([]string, 0, len(images))
	for _, img := range images {
		handles = append(handles, img.DeletionHandle)
	}

	return handles
}
