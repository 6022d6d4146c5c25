package impl

import (
	"context"
	"testing"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	mockRepo "showcase/internal/mocks/repository"
	mockSvc "showcase/internal/mocks/service"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentMaintenanceFixtures struct {
	service   usecase.ContentMaintenanceUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockContentRepository
	defaults  *mockSvc.MockContentDefaults
}

func createTestContentMaintenanceService(t *testing.T) contentMaintenanceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	repo := mockRepo.NewMockContentRepository(t)
	defaults := mockSvc.NewMockContentDefaults(t)

	factory.EXPECT().NewContentRepository().Return(repo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	return contentMaintenanceFixtures{
		service: NewContentMaintenanceService(ContentMaintenanceParams{
			TxManager: txManager,
			Defaults:  defaults,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		repo:      repo,
		defaults:  defaults,
	}
}

func TestContentMaintenance_LoadDefaults_UpsertsEveryPair(t *testing.T) {
	fx := createTestContentMaintenanceService(t)
	ctx := context.Background()
	homeEN := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageEN), Data: map[string]any{"old": 1}}
	fresh := map[string]any{"hero": "new"}

	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeHome, mock.Anything).Return(fresh, nil)
	fx.defaults.EXPECT().Load(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrNoDefaultContent)
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(homeEN, nil).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().Update(ctx, homeEN).Return(nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(nil).Once()

	results, err := fx.service.LoadDefaults(ctx)

	require.NoError(t, err)
	require.Len(t, results, len(entity.AllContentTypes())*len(entity.AllLanguages()))
	assert.Equal(t, usecase.InitStatusUpdated, results[0].Status)
	assert.Equal(t, usecase.InitStatusCreated, results[1].Status)
	assert.Equal(t, usecase.InitStatusNoDefault, results[2].Status)
	assert.Equal(t, fresh, homeEN.Data)
}

func TestContentMaintenance_MigrateLegacy(t *testing.T) {
	fx := createTestContentMaintenanceService(t)
	ctx := context.Background()
	about := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeAbout}
	home := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome}
	homeEN := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageEN)}

	fx.repo.EXPECT().ListLegacy(ctx).Return([]*entity.Content{about, home}, nil).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeAbout, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(homeEN, nil).Once()
	fx.repo.EXPECT().ClaimLegacy(ctx, about, entity.LanguageEN).RunAndReturn(claimLegacy).Once()

	count, err := fx.service.MigrateLegacy(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.LanguageEN, about.LanguageOrEmpty())
	assert.True(t, home.IsLegacy())
}

func TestContentMaintenance_MigrateLegacy_SkipsAlreadyClaimed(t *testing.T) {
	fx := createTestContentMaintenanceService(t)
	ctx := context.Background()
	about := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeAbout}

	fx.repo.EXPECT().ListLegacy(ctx).Return([]*entity.Content{about}, nil).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeAbout, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().ClaimLegacy(ctx, about, entity.LanguageEN).Return(repository.ErrContentNotFound).Once()

	count, err := fx.service.MigrateLegacy(ctx)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, about.IsLegacy())
}

func TestContentMaintenance_DuplicateLanguage(t *testing.T) {
	fx := createTestContentMaintenanceService(t)
	ctx := context.Background()
	homeEN := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageEN), Data: map[string]any{"hero": "Welcome"}}
	aboutEN := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeAbout, Language: languagePtr(entity.LanguageEN)}

	fx.repo.EXPECT().ListByLanguage(ctx, entity.LanguageEN).Return([]*entity.Content{homeEN, aboutEN}, nil).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeAbout, entity.LanguageAR).Return(&entity.Content{}, nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Content) bool {
		return c.Type == entity.ContentTypeHome && c.LanguageOrEmpty() == entity.LanguageAR && c.Data["hero"] == "Welcome" && c.ID != homeEN.ID
	})).Return(nil).Once()

	count, err := fx.service.DuplicateLanguage(ctx, entity.LanguageEN, entity.LanguageAR)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestContentMaintenance_DuplicateLanguage_SameLanguage(t *testing.T) {
	fx := createTestContentMaintenanceService(t)

	_, err := fx.service.DuplicateLanguage(context.Background(), entity.LanguageEN, entity.LanguageEN)

	require.ErrorIs(t, err, domainerrors.ErrInvalidLanguage)
}
