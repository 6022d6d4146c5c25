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

type partnerServiceFixtures struct {
	service usecase.PartnerUsecase
	repo    *mockRepo.MockPartnerRepository
	store   *mockSvc.MockMediaStore
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	repo := mockRepo.NewMockPartnerRepository(t)
	store := mockSvc.NewMockMediaStore(t)

	return partnerServiceFixtures{
		service: NewPartnerService(PartnerServiceParams{Repo: repo, Store: store, Logger: newDiscardLogger()}),
		repo:    repo,
		store:   store,
	}
}

func TestPartnerService_Create(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.store.EXPECT().Upload(ctx, "/staging/acme.png", constants.FolderPartners, "image/jpeg").Return(remoteRef("partners/acme.png"), nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Partner")).Return(nil).Once()

	partner, err := fx.service.Create(ctx, &usecase.PartnerInput{Name: "Acme", Website: "https://acme.example"}, stagedImage("acme.png"))

	require.NoError(t, err)
	assert.Equal(t, "Acme", partner.Name)
	assert.Equal(t, "partners/acme.png", partner.Logo.DeletionHandle)
	assert.Equal(t, "Acme", partner.Logo.DisplayMetadata)
	assert.NotEqual(t, uuid.Nil, partner.Logo.ID)
}

func TestPartnerService_Create_RequiresLogo(t *testing.T) {
	fx := createTestPartnerService(t)

	_, err := fx.service.Create(context.Background(), &usecase.PartnerInput{Name: "Acme"}, nil)

	require.ErrorIs(t, err, domainerrors.ErrLogoRequired)
}

func TestPartnerService_Update_ReplacesLogoAfterSave(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	partner := &entity.Partner{
		ID:          uuid.New(),
		Name:        "Acme",
		Description: "Distributor",
		Logo:        entity.AssetReference{ID: uuid.New(), DeletionHandle: "partners/old.png"},
	}

	fx.repo.EXPECT().FindByID(ctx, partner.ID).Return(partner, nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/new.png", constants.FolderPartners, "image/jpeg").Return(remoteRef("partners/new.png"), nil).Once()
	fx.repo.EXPECT().Update(ctx, partner).Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "partners/old.png").Return(nil).Once()

	got, err := fx.service.Update(ctx, partner.ID, &usecase.PartnerInput{Website: "https://acme.example"}, stagedImage("new.png"))

	require.NoError(t, err)
	assert.Equal(t, "Distributor", got.Description)
	assert.Equal(t, "https://acme.example", got.Website)
	assert.Equal(t, "partners/new.png", got.Logo.DeletionHandle)
}

func TestPartnerService_Delete_ToleratesRemoteFailure(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	partner := &entity.Partner{ID: uuid.New(), Logo: entity.AssetReference{DeletionHandle: "partners/acme.png"}}

	fx.repo.EXPECT().FindByID(ctx, partner.ID).Return(partner, nil).Once()
	fx.store.EXPECT().Delete(ctx, "partners/acme.png").Return(errors.New("network down")).Once()
	fx.repo.EXPECT().Delete(ctx, partner.ID).Return(nil).Once()

	require.NoError(t, fx.service.Delete(ctx, partner.ID))
}

func TestPartnerService_Get_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPartnerNotFound).Once()

	_, err := fx.service.Get(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}
