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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type companyInfoServiceFixtures struct {
	service usecase.CompanyInfoUsecase
	repo    *mockRepo.MockCompanyInfoRepository
	qrcode  *mockSvc.MockQRCodeService
	store   *mockSvc.MockMediaStore
}

func createTestCompanyInfoService(t *testing.T) companyInfoServiceFixtures {
	repo := mockRepo.NewMockCompanyInfoRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	store := mockSvc.NewMockMediaStore(t)

	return companyInfoServiceFixtures{
		service: NewCompanyInfoService(CompanyInfoServiceParams{
			Repo:   repo,
			QRCode: qrcode,
			Store:  store,
			Logger: newDiscardLogger(),
		}),
		repo:   repo,
		qrcode: qrcode,
		store:  store,
	}
}

func TestCompanyInfoService_Get_CreatesDefaultsOnce(t *testing.T) {
	fx := createTestCompanyInfoService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Get(ctx).Return(nil, repository.ErrCompanyInfoNotFound).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CompanyInfo")).Return(nil).Once()

	info, err := fx.service.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, "123 Security Avenue, Suite 500, Riyadh, Saudi Arabia", info.Address.FullAddress)
	assert.Equal(t, "yellow", info.ThemeColor)
}

func TestCompanyInfoService_Get_LostCreateRaceRereads(t *testing.T) {
	fx := createTestCompanyInfoService(t)
	ctx := context.Background()
	winner := &entity.CompanyInfo{ID: uuid.New(), ThemeColor: "blue"}

	fx.repo.EXPECT().Get(ctx).Return(nil, repository.ErrCompanyInfoNotFound).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CompanyInfo")).Return(repository.ErrCompanyInfoExists).Once()
	fx.repo.EXPECT().Get(ctx).Return(winner, nil).Once()

	info, err := fx.service.Get(ctx)

	require.NoError(t, err)
	assert.Same(t, winner, info)
}

func TestCompanyInfoService_Update_OnlyProvidedLeaves(t *testing.T) {
	fx := createTestCompanyInfoService(t)
	ctx := context.Background()
	current := entity.NewDefaultCompanyInfo()

	fx.repo.EXPECT().Get(ctx).Return(current, nil).Once()
	fx.repo.EXPECT().Update(ctx, current).Return(nil).Once()

	info, err := fx.service.Update(ctx, &usecase.CompanyInfoPatch{
		Address:    &usecase.AddressPatch{City: "Jeddah"},
		Email:      &usecase.EmailPatch{Sales: "deals@speedsafe.com"},
		ThemeColor: "red",
	})

	require.NoError(t, err)
	assert.Equal(t, "123 Security Avenue", info.Address.Street)
	assert.Equal(t, "Jeddah", info.Address.City)
	assert.Equal(t, "123 Security Avenue, Suite 500, Jeddah, Saudi Arabia", info.Address.FullAddress)
	assert.Equal(t, "info@speedsafe.com", info.Email.General)
	assert.Equal(t, "deals@speedsafe.com", info.Email.Sales)
	assert.Equal(t, "red", info.ThemeColor)
}

func TestCompanyInfoService_UpdateLogo_ReleasesPrevious(t *testing.T) {
	fx := createTestCompanyInfoService(t)
	ctx := context.Background()
	current := entity.NewDefaultCompanyInfo()
	current.Logo = &entity.AssetReference{ID: uuid.New(), DeletionHandle: "company/old.png", DisplayMetadata: "SpeedSafe"}

	fx.repo.EXPECT().Get(ctx).Return(current, nil).Once()
	fx.store.EXPECT().Upload(ctx, "/staging/logo.png", constants.FolderCompany, "image/jpeg").Return(remoteRef("company/logo.png"), nil).Once()
	fx.repo.EXPECT().Update(ctx, current).Return(nil).Once()
	fx.store.EXPECT().Delete(ctx, "company/old.png").Return(nil).Once()

	info, err := fx.service.UpdateLogo(ctx, stagedImage("logo.png"))

	require.NoError(t, err)
	require.NotNil(t, info.Logo)
	assert.Equal(t, "company/logo.png", info.Logo.DeletionHandle)
	assert.Equal(t, "SpeedSafe", info.Logo.DisplayMetadata)
}

func TestCompanyInfoService_UpdateLogo_Required(t *testing.T) {
	fx := createTestCompanyInfoService(t)

	_, err := fx.service.UpdateLogo(context.Background(), nil)

	require.ErrorIs(t, err, domainerrors.ErrLogoRequired)
}

func TestCompanyInfoService_ContactCard(t *testing.T) {
	fx := createTestCompanyInfoService(t)
	ctx := context.Background()
	current := entity.NewDefaultCompanyInfo()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.repo.EXPECT().Get(ctx).Return(current, nil).Once()
	fx.qrcode.EXPECT().GenerateContactCard(current).Return(png, nil).Once()

	got, err := fx.service.ContactCard(ctx)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
