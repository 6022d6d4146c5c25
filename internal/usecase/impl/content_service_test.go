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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service  usecase.ContentUsecase
	repo     *mockRepo.MockContentRepository
	defaults *mockSvc.MockContentDefaults
	cache    *mockSvc.MockContentCache
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	repo := mockRepo.NewMockContentRepository(t)
	defaults := mockSvc.NewMockContentDefaults(t)
	cache := mockSvc.NewMockContentCache(t)

	return contentServiceFixtures{
		service: NewContentService(ContentServiceParams{
			Repo:     repo,
			Defaults: defaults,
			Cache:    cache,
			Logger:   newDiscardLogger(),
		}),
		repo:     repo,
		defaults: defaults,
		cache:    cache,
	}
}

func languagePtr(l entity.Language) *entity.Language {
	return &l
}

func TestContentService_Resolve_ExactMatch(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	stored := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeAbout, Language: languagePtr(entity.LanguageAR), Data: map[string]any{"title": "عن"}}

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeAbout, entity.LanguageAR).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeAbout, entity.LanguageAR).Return(stored, nil).Once()
	fx.cache.EXPECT().Set(ctx, stored).Return().Once()

	got, err := fx.service.Resolve(ctx, "about", "ar")

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestContentService_Resolve_CacheHit(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	cached := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageEN)}

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(cached, true).Once()

	got, err := fx.service.Resolve(ctx, "home", "")

	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestContentService_Resolve_LegacyMigratedThenOtherLanguageSeeded(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	legacyID := uuid.New()
	legacy := &entity.Content{ID: legacyID, Type: entity.ContentTypeHome, Data: map[string]any{"hero": "old"}}
	enDefault := map[string]any{"hero": "Welcome"}

	// AR claims the legacy record.
	fx.cache.EXPECT().Get(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeHome).Return(legacy, nil).Once()
	fx.repo.EXPECT().ClaimLegacy(ctx, legacy, entity.LanguageAR).
		RunAndReturn(claimLegacy).Once()
	fx.cache.EXPECT().Set(ctx, legacy).Return().Once()

	ar, err := fx.service.Resolve(ctx, "home", "AR")

	require.NoError(t, err)
	assert.Equal(t, legacyID, ar.ID)
	assert.Equal(t, entity.LanguageAR, ar.LanguageOrEmpty())
	assert.Equal(t, "old", ar.Data["hero"])

	// EN finds nothing left to migrate and seeds from defaults.
	fx.cache.EXPECT().Get(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeHome).Return(nil, repository.ErrContentNotFound).Once()
	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(enDefault, nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(nil).Once()
	fx.cache.EXPECT().Set(ctx, mock.AnythingOfType("*entity.Content")).Return().Once()

	en, err := fx.service.Resolve(ctx, "home", "EN")

	require.NoError(t, err)
	assert.NotEqual(t, legacyID, en.ID)
	assert.Equal(t, entity.LanguageEN, en.LanguageOrEmpty())
	assert.Equal(t, enDefault, en.Data)
}

func TestContentService_Resolve_LegacyClaimLostRereads(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	legacy := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Data: map[string]any{"hero": "old"}}
	winner := &entity.Content{ID: legacy.ID, Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageAR), Data: map[string]any{"hero": "old"}}

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeHome).Return(legacy, nil).Once()
	fx.repo.EXPECT().ClaimLegacy(ctx, legacy, entity.LanguageAR).Return(repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(winner, nil).Once()
	fx.cache.EXPECT().Set(ctx, winner).Return().Once()

	content, err := fx.service.Resolve(ctx, "home", "AR")

	require.NoError(t, err)
	assert.Same(t, winner, content)
	assert.True(t, legacy.IsLegacy())
}

func TestContentService_Resolve_LegacyClaimedForOtherLanguageSeeds(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	legacy := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Data: map[string]any{"hero": "old"}}
	enDefault := map[string]any{"hero": "Welcome"}

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Twice()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeHome).Return(legacy, nil).Once()
	fx.repo.EXPECT().ClaimLegacy(ctx, legacy, entity.LanguageEN).Return(repository.ErrContentNotFound).Once()
	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(enDefault, nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(nil).Once()
	fx.cache.EXPECT().Set(ctx, mock.AnythingOfType("*entity.Content")).Return().Once()

	content, err := fx.service.Resolve(ctx, "home", "EN")

	require.NoError(t, err)
	assert.NotEqual(t, legacy.ID, content.ID)
	assert.Equal(t, enDefault, content.Data)
	assert.True(t, legacy.IsLegacy())
}

// claimLegacy mirrors the repository assigning the language on a won claim.
func claimLegacy(_ context.Context, content *entity.Content, language entity.Language) error {
	content.Language = languagePtr(language)

	return nil
}

func TestContentService_Resolve_NoDefault(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeGallery, entity.LanguageAR).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeGallery, entity.LanguageAR).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeGallery).Return(nil, repository.ErrContentNotFound).Once()
	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeGallery, entity.LanguageAR).Return(nil, service.ErrNoDefaultContent).Once()

	got, err := fx.service.Resolve(ctx, "gallery", "AR")

	require.ErrorIs(t, err, domainerrors.ErrContentNotFound)
	assert.Nil(t, got)
}

func TestContentService_Resolve_CreateRaceRereads(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	winner := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeContact, Language: languagePtr(entity.LanguageEN)}

	fx.cache.EXPECT().Get(ctx, entity.ContentTypeContact, entity.LanguageEN).Return(nil, false).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeContact, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeContact).Return(nil, repository.ErrContentNotFound).Once()
	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeContact, entity.LanguageEN).Return(map[string]any{"k": "v"}, nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(repository.ErrContentExists).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeContact, entity.LanguageEN).Return(winner, nil).Once()
	fx.cache.EXPECT().Set(ctx, winner).Return().Once()

	got, err := fx.service.Resolve(ctx, "contact", "EN")

	require.NoError(t, err)
	assert.Same(t, winner, got)
}

func TestContentService_Resolve_InvalidKey(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		language    string
		wantErr     error
	}{
		{name: "unknown type", contentType: "blog", language: "EN", wantErr: domainerrors.ErrInvalidContentType},
		{name: "unknown language", contentType: "home", language: "FR", wantErr: domainerrors.ErrInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContentService(t)

			_, err := fx.service.Resolve(context.Background(), tt.contentType, tt.language)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContentService_Update_EmptyPayloadLeavesRecordUntouched(t *testing.T) {
	fx := createTestContentService(t)

	got, err := fx.service.Update(context.Background(), "home", "EN", map[string]any{})

	require.ErrorIs(t, err, domainerrors.ErrEmptyPayload)
	assert.Nil(t, got)
}

func TestContentService_Update_OverwritesExisting(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	existing := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeFooter, Language: languagePtr(entity.LanguageAR), Data: map[string]any{"old": true}}
	payload := map[string]any{"copyright": "2026"}

	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeFooter, entity.LanguageAR).Return(existing, nil).Once()
	fx.repo.EXPECT().Update(ctx, existing).Return(nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, entity.ContentTypeFooter, entity.LanguageAR).Return().Once()

	got, err := fx.service.Update(ctx, "footer", "ar", payload)

	require.NoError(t, err)
	assert.Equal(t, payload, got.Data)
}

func TestContentService_Update_CreatesMissing(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	payload := map[string]any{"title": "Services"}

	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeServices, entity.LanguageEN).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().FindLegacy(ctx, entity.ContentTypeServices).Return(nil, repository.ErrContentNotFound).Once()
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, entity.ContentTypeServices, entity.LanguageEN).Return().Once()

	got, err := fx.service.Update(ctx, "services", "", payload)

	require.NoError(t, err)
	assert.Equal(t, entity.LanguageEN, got.LanguageOrEmpty())
	assert.Equal(t, payload, got.Data)
}

func TestContentService_Initialize_ReportsEveryPair(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	existing := &entity.Content{ID: uuid.New(), Type: entity.ContentTypeHome, Language: languagePtr(entity.LanguageEN)}

	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageEN).Return(existing, nil).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, entity.ContentTypeHome, entity.LanguageAR).Return(nil, errors.New("connection refused")).Once()
	fx.repo.EXPECT().FindByTypeAndLanguage(ctx, mock.Anything, mock.Anything).Return(nil, repository.ErrContentNotFound)
	fx.repo.EXPECT().FindLegacy(ctx, mock.Anything).Return(nil, repository.ErrContentNotFound)
	fx.defaults.EXPECT().Load(ctx, entity.ContentTypeFooter, mock.Anything).Return(map[string]any{"links": []any{}}, nil)
	fx.defaults.EXPECT().Load(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrNoDefaultContent)
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Content")).Return(nil).Twice()
	fx.cache.EXPECT().Invalidate(ctx, entity.ContentTypeFooter, mock.Anything).Return().Twice()

	results := fx.service.Initialize(ctx)

	require.Len(t, results, len(entity.AllContentTypes())*len(entity.AllLanguages()))

	byKey := make(map[string]usecase.ContentInitResult, len(results))
	for _, r := range results {
		byKey[string(r.Type)+"/"+string(r.Language)] = r
	}
	assert.Equal(t, usecase.InitStatusAlreadyExists, byKey["home/EN"].Status)
	assert.Equal(t, usecase.InitStatusFailed, byKey["home/AR"].Status)
	assert.Contains(t, byKey["home/AR"].Error, "connection refused")
	assert.Equal(t, usecase.InitStatusCreated, byKey["footer/EN"].Status)
	assert.Equal(t, usecase.InitStatusCreated, byKey["footer/AR"].Status)
	assert.Equal(t, usecase.InitStatusNoDefault, byKey["gallery/AR"].Status)
	assert.Empty(t, byKey["gallery/AR"].Error)
}
