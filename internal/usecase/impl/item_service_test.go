package impl

import (
	"context"
	"testing"

	"showcase/internal/domain/constants"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	mockRepo "showcase/internal/mocks/repository"
	mockSvc "showcase/internal/mocks/service"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceFixtures struct {
	service *itemService
	repo    *mockRepo.MockItemRepository
	store   *mockSvc.MockMediaStore
}

func createTestItemService(t *testing.T, kind entity.ItemKind) itemServiceFixtures {
	repo := mockRepo.NewMockItemRepository(t)
	store := mockSvc.NewMockMediaStore(t)

	return itemServiceFixtures{
		service: newItemService(kind, repo, store, newDiscardLogger()),
		repo:    repo,
		store:   store,
	}
}

func stagedImage(name string) *usecase.UploadedFile {
	return &usecase.UploadedFile{Path: "/staging/" + name, OriginalName: name, ContentType: "image/jpeg", Size: 1024}
}

func stagedDocument(name string) *usecase.UploadedFile {
	return &usecase.UploadedFile{Path: "/staging/" + name, OriginalName: name, ContentType: "application/pdf", Size: 4096}
}

func remoteRef(handle string) *entity.AssetReference {
	return &entity.AssetReference{URL: "https://cdn.example.com/" + handle, DeletionHandle: handle}
}

func mainImageCount(item *entity.Item) int {
	count := 0
	for _, img := range item.Images {
		if img.IsMain {
			count++
		}
	}

	return count
}

func itemWithAssets() *entity.Item {
	return &entity.Item{
		ID:          uuid.New(),
		Kind:        entity.ItemKindProduct,
		Name:        "Camera",
		Description: "Dome camera",
		Category:    "cctv",
		Images: []entity.AssetReference{
			{ID: uuid.New(), DeletionHandle: "products/one.jpg", IsMain: true},
			{ID: uuid.New(), DeletionHandle: "products/two.jpg"},
		},
		Catalog: &entity.CatalogAsset{
			AssetReference:   entity.AssetReference{ID: uuid.New(), DeletionHandle: "catalogs/datasheet.pdf"},
			FileKind:         entity.CatalogKindPDF,
			OriginalFileName: "datasheet.pdf",
		},
		HasCatalog: true,
	}
}

func TestItemService_Create_SecondUploadFails(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()

	images := []*usecase.UploadedFile{stagedImage("a.jpg"), stagedImage("b.jpg"), stagedImage("c.jpg")}

	fx.store.EXPECT().Upload(ctx, "/staging/a.jpg", constants.FolderProducts, "image/jpeg").Return(remoteRef("products/a.jpg"), nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/b.jpg", constants.FolderProducts, "image/jpeg").
		Return(nil, domainerrors.ErrUploadFailed.WithDetails("bucket unavailable")).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/c.jpg", constants.FolderProducts, "image/jpeg").Return(remoteRef("products/c.jpg"), nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil).Once()

	out, err := fx.service.Create(ctx, &usecase.ItemInput{Name: "Camera", Description: "Dome camera"}, images, nil)

	require.NoError(t, err)
	require.Len(t, out.Item.Images, 2)
	assert.Equal(t, 1, mainImageCount(out.Item))
	assert.True(t, out.Item.Images[0].IsMain)
	assert.Equal(t, "products/a.jpg", out.Item.Images[0].DeletionHandle)
	assert.NotEqual(t, uuid.Nil, out.Item.Images[1].ID)
	require.Len(t, out.FailedUploads, 1)
	assert.Equal(t, "b.jpg", out.FailedUploads[0].FileName)
	assert.Contains(t, out.FailedUploads[0].Reason, "bucket unavailable")
}

func TestItemService_Create_WithCatalog(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindService)
	ctx := context.Background()

	fx.store.EXPECT().Upload(ctx, "/staging/brochure.PDF", constants.FolderCatalogs, "application/pdf").
		Return(remoteRef("catalogs/brochure.pdf"), nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil).Once()

	out, err := fx.service.Create(ctx, &usecase.ItemInput{Name: "Install", Description: "On-site install"}, nil, stagedDocument("brochure.PDF"))

	require.NoError(t, err)
	require.NotNil(t, out.Item.Catalog)
	assert.True(t, out.Item.HasCatalog)
	assert.Equal(t, entity.CatalogKindPDF, out.Item.Catalog.FileKind)
	assert.Equal(t, "brochure.PDF", out.Item.Catalog.OriginalFileName)
	assert.False(t, out.Item.Catalog.UploadedAt.IsZero())
	assert.Empty(t, out.Item.Images)
}

func TestItemService_Create_ValidationRunsBeforeUploads(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ItemInput
		catalog *usecase.UploadedFile
		wantErr error
	}{
		{
			name:    "missing name",
			input:   &usecase.ItemInput{Description: "desc"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing description",
			input:   &usecase.ItemInput{Name: "name"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "catalog with image extension",
			input:   &usecase.ItemInput{Name: "name", Description: "desc"},
			catalog: stagedDocument("photo.png"),
			wantErr: domainerrors.ErrInvalidFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestItemService(t, entity.ItemKindProduct)

			out, err := fx.service.Create(context.Background(), tt.input, []*usecase.UploadedFile{stagedImage("a.jpg")}, tt.catalog)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestItemService_Create_RepositoryFailureReleasesUploads(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()

	fx.store.EXPECT().Upload(ctx, "/staging/a.jpg", constants.FolderProducts, "image/jpeg").Return(remoteRef("products/a.jpg"), nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(errors.New("connection reset")).Once()
	fx.store.EXPECT().Delete(ctx, "products/a.jpg").Return(nil).Once()

	out, err := fx.service.Create(ctx, &usecase.ItemInput{Name: "Camera", Description: "Dome"}, []*usecase.UploadedFile{stagedImage("a.jpg")}, nil)

	require.Error(t, err)
	assert.Nil(t, out)
}

func TestItemService_Delete_ReleasesEveryAssetAndRemovesRecord(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.store.EXPECT().Delete(ctx, "products/one.jpg").Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "products/two.jpg").Return(domainerrors.ErrDeleteFailed).Once()
	fx.store.EXPECT().Delete(ctx, "catalogs/datasheet.pdf").Return(nil).Once()
	fx.repo.EXPECT().Delete(ctx, item.ID).Return(nil).Once()

	err := fx.service.Delete(ctx, item.ID)

	require.NoError(t, err)
	fx.store.AssertNumberOfCalls(t, "Delete", 3)
}

func TestItemService_Get_NotFoundPerKind(t *testing.T) {
	tests := []struct {
		kind    entity.ItemKind
		wantErr error
	}{
		{kind: entity.ItemKindProduct, wantErr: domainerrors.ErrProductNotFound},
		{kind: entity.ItemKindService, wantErr: domainerrors.ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			fx := createTestItemService(t, tt.kind)
			ctx := context.Background()
			id := uuid.New()

			fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrItemNotFound).Once()

			item, err := fx.service.Get(ctx, id)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, item)
		})
	}
}

func TestItemService_SetMainImage(t *testing.T) {
	t.Run("switches the main flag", func(t *testing.T) {
		fx := createTestItemService(t, entity.ItemKindProduct)
		ctx := context.Background()
		item := itemWithAssets()
		target := item.Images[1].ID

		fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
		fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()

		got, err := fx.service.SetMainImage(ctx, item.ID, target)

		require.NoError(t, err)
		assert.False(t, got.Images[0].IsMain)
		assert.True(t, got.Images[1].IsMain)
		assert.Equal(t, 1, mainImageCount(got))
	})

	t.Run("unknown image leaves the item untouched", func(t *testing.T) {
		fx := createTestItemService(t, entity.ItemKindProduct)
		ctx := context.Background()
		item := itemWithAssets()

		fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()

		got, err := fx.service.SetMainImage(ctx, item.ID, uuid.New())

		require.ErrorIs(t, err, domainerrors.ErrImageNotFound)
		assert.Nil(t, got)
		assert.True(t, item.Images[0].IsMain)
		assert.False(t, item.Images[1].IsMain)
	})
}

func TestItemService_RemoveImage_PromotesNextImage(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()
	mainID := item.Images[0].ID

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "products/one.jpg").Return(errors.New("timeout")).Once()

	got, err := fx.service.RemoveImage(ctx, item.ID, mainID)

	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "products/two.jpg", got.Images[0].DeletionHandle)
	assert.True(t, got.Images[0].IsMain)
}

func TestItemService_RemoveImage_LastImageLeavesNoMain(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()
	item.Images = item.Images[:1]
	onlyID := item.Images[0].ID

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "products/one.jpg").Return(nil).Once()

	got, err := fx.service.RemoveImage(ctx, item.ID, onlyID)

	require.NoError(t, err)
	assert.Empty(t, got.Images)
	_, hasMain := got.MainImage()
	assert.False(t, hasMain)
}

func TestItemService_RemoveImage_UnknownImage(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()

	_, err := fx.service.RemoveImage(ctx, item.ID, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrImageNotFound)
	assert.Len(t, item.Images, 2)
}

func TestItemService_AddImages_KeepsExistingMain(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/c.jpg", constants.FolderProducts, "image/jpeg").Return(remoteRef("products/c.jpg"), nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()

	out, err := fx.service.AddImages(ctx, item.ID, []*usecase.UploadedFile{stagedImage("c.jpg")})

	require.NoError(t, err)
	require.Len(t, out.Item.Images, 3)
	assert.False(t, out.Item.Images[2].IsMain)
	assert.Equal(t, 1, mainImageCount(out.Item))
	assert.Empty(t, out.FailedUploads)
}

func TestItemService_AddImages_FirstImageBecomesMain(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindService)
	ctx := context.Background()
	item := &entity.Item{ID: uuid.New(), Kind: entity.ItemKindService, Name: "Audit"}

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/a.jpg", constants.FolderServices, "image/jpeg").Return(remoteRef("services/a.jpg"), nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/b.jpg", constants.FolderServices, "image/jpeg").Return(remoteRef("services/b.jpg"), nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()

	out, err := fx.service.AddImages(ctx, item.ID, []*usecase.UploadedFile{stagedImage("a.jpg"), stagedImage("b.jpg")})

	require.NoError(t, err)
	assert.True(t, out.Item.Images[0].IsMain)
	assert.False(t, out.Item.Images[1].IsMain)
}

func TestItemService_AddImages_RequiresFiles(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)

	_, err := fx.service.AddImages(context.Background(), uuid.New(), nil)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestItemService_UploadCatalog_InvalidExtensionChangesNothing(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	got, err := fx.service.UploadCatalog(ctx, item.ID, stagedDocument("notes.txt"))

	require.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
	assert.Nil(t, got)
	assert.Equal(t, "catalogs/datasheet.pdf", item.Catalog.DeletionHandle)
}

func TestItemService_UploadCatalog_ReplacesPrevious(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/sheet.xlsx", constants.FolderCatalogs, "application/pdf").
		Return(remoteRef("catalogs/sheet.xlsx"), nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "catalogs/datasheet.pdf").Return(nil).Once()

	got, err := fx.service.UploadCatalog(ctx, item.ID, stagedDocument("sheet.xlsx"))

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogKindXLSX, got.Catalog.FileKind)
	assert.Equal(t, "catalogs/sheet.xlsx", got.Catalog.DeletionHandle)
	assert.True(t, got.HasCatalog)
}

func TestItemService_DeleteCatalog(t *testing.T) {
	t.Run("clears the catalog", func(t *testing.T) {
		fx := createTestItemService(t, entity.ItemKindProduct)
		ctx := context.Background()
		item := itemWithAssets()

		fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
		fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()
		fx.store.EXPECT().Delete(ctx, "catalogs/datasheet.pdf").Return(nil).Once()

		got, err := fx.service.DeleteCatalog(ctx, item.ID)

		require.NoError(t, err)
		assert.Nil(t, got.Catalog)
		assert.False(t, got.HasCatalog)
	})

	t.Run("no catalog", func(t *testing.T) {
		fx := createTestItemService(t, entity.ItemKindProduct)
		ctx := context.Background()
		item := &entity.Item{ID: uuid.New(), Kind: entity.ItemKindProduct}

		fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()

		_, err := fx.service.DeleteCatalog(ctx, item.ID)

		require.ErrorIs(t, err, domainerrors.ErrNoCatalog)
	})
}

func TestItemService_GetCatalog_NoneIsNotFound(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := &entity.Item{ID: uuid.New(), Kind: entity.ItemKindProduct}

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()

	_, err := fx.service.GetCatalog(ctx, item.ID)

	require.ErrorIs(t, err, domainerrors.ErrCatalogNotFound)
}

func TestItemService_Update_KeepsEmptyFields(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()
	item := itemWithAssets()

	fx.repo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Once()
	fx.repo.EXPECT().Update(ctx, item).Return(nil).Once()

	out, err := fx.service.Update(ctx, item.ID, &usecase.ItemInput{Category: "access-control"}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Camera", out.Item.Name)
	assert.Equal(t, "Dome camera", out.Item.Description)
	assert.Equal(t, "access-control", out.Item.Category)
	assert.Len(t, out.Item.Images, 2)
}

func TestItemService_ListingFilters(t *testing.T) {
	fx := createTestItemService(t, entity.ItemKindProduct)
	ctx := context.Background()

	fx.repo.EXPECT().List(ctx, repository.ItemFilter{Keyword: "dome", Category: "cctv"}).Return([]*entity.Item{}, nil).Once()
	fx.repo.EXPECT().List(ctx, repository.ItemFilter{Limit: constants.TopLimit}).Return([]*entity.Item{}, nil).Once()
	fx.repo.EXPECT().List(ctx, repository.ItemFilter{WithCatalog: true}).Return([]*entity.Item{}, nil).Once()

	_, err := fx.service.List(ctx, usecase.ItemQuery{Keyword: "dome", Category: "cctv"})
	require.NoError(t, err)
	_, err = fx.service.Top(ctx)
	require.NoError(t, err)
	_, err = fx.service.WithCatalogs(ctx)
	require.NoError(t, err)
}
