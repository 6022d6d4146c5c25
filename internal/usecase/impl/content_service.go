package impl

import (
	"context"
	"log/slog"

	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contentService resolves localized content blocks.
type contentService struct {
	repo     repository.ContentRepository
	defaults service.ContentDefaults
	cache    service.ContentCache
	logger   *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Repo     repository.ContentRepository
	Defaults service.ContentDefaults
	Cache    service.ContentCache
	Logger   *slog.Logger
}

func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		repo:     params.Repo,
		defaults: params.Defaults,
		cache:    params.Cache,
		logger:   params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// parseContentKey validates the route values. An empty language means EN.
func parseContentKey(contentType, language string) (entity.ContentType, entity.Language, error) {
	t := entity.ContentType(contentType)
	if !t.IsValid() {
		return "", "", domainerrors.ErrInvalidContentType.WithDetails(contentType)
	}

	l, ok := entity.ParseLanguage(language)
	if !ok {
		return "", "", domainerrors.ErrInvalidLanguage.WithDetails(language)
	}

	return t, l, nil
}

func (srv *contentService) Resolve(ctx context.Context, contentType, language string) (*entity.Content, error) {
	t, l, err := parseContentKey(contentType, language)
	if err != nil {
		return nil, err
	}

	if cached, ok := srv.cache.Get(ctx, t, l); ok {
		return cached, nil
	}

	content, _, err := srv.resolve(ctx, t, l)
	if err != nil {
		return nil, err
	}
	srv.cache.Set(ctx, content)

	return content, nil
}

// resolve walks exact match, legacy migration and defaults in that order, and
// reports which step produced the record.
func (srv *contentService) resolve(ctx context.Context, t entity.ContentType, l entity.Language) (*entity.Content, usecase.InitStatus, error) {
	content, err := srv.findExact(ctx, t, l)
	if err != nil {
		return nil, usecase.InitStatusFailed, err
	}
	if content != nil {
		return content, usecase.InitStatusAlreadyExists, nil
	}

	content, err = srv.migrateLegacy(ctx, t, l)
	if err != nil {
		return nil, usecase.InitStatusFailed, err
	}
	if content != nil {
		return content, usecase.InitStatusMigrated, nil
	}

	data, err := srv.defaults.Load(ctx, t, l)
	if errors.Is(err, service.ErrNoDefaultContent) {
		return nil, usecase.InitStatusNoDefault, domainerrors.ErrContentNotFound.WithDetails(string(t) + " content is not available in " + string(l))
	}
	if err != nil {
		return nil, usecase.InitStatusFailed, errors.Wrapf(err, "failed to load default %s content", t)
	}

	lang := l
	content = &entity.Content{ID: uuid.New(), Type: t, Language: &lang, Data: data}

	err = srv.repo.Create(ctx, content)
	if errors.Is(err, repository.ErrContentExists) {
		// Lost a race with another request seeding the same pair.
		winner, findErr := srv.findExact(ctx, t, l)
		if findErr != nil {
			return nil, usecase.InitStatusFailed, findErr
		}
		if winner != nil {
			return winner, usecase.InitStatusAlreadyExists, nil
		}
	}
	if err != nil {
		return nil, usecase.InitStatusFailed, errors.Wrapf(err, "failed to create %s content", t)
	}

	srv.log(ctx).Info("Content seeded from defaults", slog.String("type", string(t)), slog.String("language", string(l)))

	return content, usecase.InitStatusCreated, nil
}

// findExact returns nil without error when the pair does not exist.
func (srv *contentService) findExact(ctx context.Context, t entity.ContentType, l entity.Language) (*entity.Content, error) {
	content, err := srv.repo.FindByTypeAndLanguage(ctx, t, l)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s content", t)
	}

	return content, nil
}

// migrateLegacy claims the language-less record of t for l. It returns nil
// when there is nothing to migrate.
func (srv *contentService) migrateLegacy(ctx context.Context, t entity.ContentType, l entity.Language) (*entity.Content, error) {
	legacy, err := srv.repo.FindLegacy(ctx, t)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find legacy %s content", t)
	}

	err = srv.repo.ClaimLegacy(ctx, legacy, l)
	if errors.Is(err, repository.ErrContentExists) || errors.Is(err, repository.ErrContentNotFound) {
		return srv.findExact(ctx, t, l)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to migrate legacy %s content", t)
	}

	srv.log(ctx).Info("Legacy content migrated", slog.String("type", string(t)), slog.String("language", string(l)))

	return legacy, nil
}

func (srv *contentService) Update(ctx context.Context, contentType, language string, data map[string]any) (*entity.Content, error) {
	t, l, err := parseContentKey(contentType, language)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrEmptyPayload
	}

	content, err := srv.findExact(ctx, t, l)
	if err != nil {
		return nil, err
	}
	if content == nil {
		content, err = srv.migrateLegacy(ctx, t, l)
		if err != nil {
			return nil, err
		}
	}

	if content == nil {
		lang := l
		content = &entity.Content{ID: uuid.New(), Type: t, Language: &lang, Data: data}
		err = srv.repo.Create(ctx, content)
		if errors.Is(err, repository.ErrContentExists) {
			content, err = srv.findExact(ctx, t, l)
			if err == nil && content != nil {
				err = srv.overwrite(ctx, content, data)
			}
		}
	} else {
		err = srv.overwrite(ctx, content, data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save %s content", t)
	}
	if content == nil {
		return nil, domainerrors.ErrContentNotFound
	}

	srv.cache.Invalidate(ctx, t, l)
	srv.log(ctx).Info("Content updated", slog.String("type", string(t)), slog.String("language", string(l)))

	return content, nil
}

func (srv *contentService) overwrite(ctx context.Context, content *entity.Content, data map[string]any) error {
	content.Data = data

	return srv.repo.Update(ctx, content)
}

// Initialize resolves every (type, language) pair. A failing pair is reported
// and does not stop the others.
func (srv *contentService) Initialize(ctx context.Context) []usecase.ContentInitResult {
	results := make([]usecase.ContentInitResult, 0, len(entity.AllContentTypes())*len(entity.AllLanguages()))

	for _, t := range entity.AllContentTypes() {
		for _, l := range entity.AllLanguages() {
			content, status, err := srv.resolve(ctx, t, l)
			result := usecase.ContentInitResult{Type: t, Language: l, Status: status}
			if err != nil && status == usecase.InitStatusFailed {
				result.Error = err.Error()
				srv.log(ctx).Error("Content initialization failed",
					slog.String("type", string(t)),
					slog.String("language", string(l)),
					slog.Any("error", err))
			}
			if content != nil && status != usecase.InitStatusAlreadyExists {
				srv.cache.Invalidate(ctx, t, l)
			}
			results = append(results, result)
		}
	}

	return results
}
