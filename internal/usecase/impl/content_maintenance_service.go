package impl

import (
	"context"
	"log/slog"
	"maps"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/repository"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contentMaintenanceService runs the bulk content tasks of the operator CLI.
type contentMaintenanceService struct {
	txManager repository.TransactionManager
	defaults  service.ContentDefaults
	logger    *slog.Logger
}

type ContentMaintenanceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Defaults  service.ContentDefaults
	Logger    *slog.Logger
}

func NewContentMaintenanceService(params ContentMaintenanceParams) usecase.ContentMaintenanceUsecase {
	return &contentMaintenanceService{
		txManager: params.TxManager,
		defaults:  params.Defaults,
		logger:    params.Logger,
	}
}

func (srv *contentMaintenanceService) LoadDefaults(ctx context.Context) ([]usecase.ContentInitResult, error) {
	var results []usecase.ContentInitResult

	for _, t := range entity.AllContentTypes() {
		for _, l := range entity.AllLanguages() {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results = append(results, srv.loadOne(ctx, t, l))
		}
	}

	return results, nil
}

func (srv *contentMaintenanceService) loadOne(ctx context.Context, t entity.ContentType, l entity.Language) usecase.ContentInitResult {
	result := usecase.ContentInitResult{Type: t, Language: l}

	data, err := srv.defaults.Load(ctx, t, l)
	if errors.Is(err, service.ErrNoDefaultContent) {
		result.Status = usecase.InitStatusNoDefault

		return result
	}
	if err != nil {
		result.Status = usecase.InitStatusFailed
		result.Error = err.Error()

		return result
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewContentRepository()

		existing, err := repo.FindByTypeAndLanguage(ctx, t, l)
		if errors.Is(err, repository.ErrContentNotFound) {
			lang := l
			result.Status = usecase.InitStatusCreated

			return repo.Create(ctx, &entity.Content{ID: uuid.New(), Type: t, Language: &lang, Data: data})
		}
		if err != nil {
			return err
		}

		existing.Data = data
		result.Status = usecase.InitStatusUpdated

		return repo.Update(ctx, existing)
	})
	if err != nil {
		result.Status = usecase.InitStatusFailed
		result.Error = err.Error()
		srv.logger.Error("Failed to load default content",
			slog.String("type", string(t)),
			slog.String("language", string(l)),
			slog.Any("error", err))
	}

	return result
}

// MigrateLegacy assigns the default language to legacy rows. A row whose type
// already has a record in the default language is left alone.
func (srv *contentMaintenanceService) MigrateLegacy(ctx context.Context) (int, error) {
	migrated := 0

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewContentRepository()

		legacy, err := repo.ListLegacy(ctx)
		if err != nil {
			return err
		}

		for _, content := range legacy {
			_, err := repo.FindByTypeAndLanguage(ctx, content.Type, entity.DefaultLanguage)
			if err == nil {
				srv.logger.Warn("Skipping legacy content, default language record exists", slog.String("type", string(content.Type)))

				continue
			}
			if !errors.Is(err, repository.ErrContentNotFound) {
				return err
			}

			err = repo.ClaimLegacy(ctx, content, entity.DefaultLanguage)
			if errors.Is(err, repository.ErrContentNotFound) {
				srv.logger.Warn("Skipping legacy content, already claimed", slog.String("type", string(content.Type)))

				continue
			}
			if err != nil {
				return errors.Wrapf(err, "failed to migrate %s content", content.Type)
			}
			migrated++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to migrate legacy content")
	}

	srv.logger.Info("Legacy content migrated", slog.Int("count", migrated))

	return migrated, nil
}

// DuplicateLanguage copies every record of from into to where to has none.
func (srv *contentMaintenanceService) DuplicateLanguage(ctx context.Context, from, to entity.Language) (int, error) {
	if !from.IsValid() || !to.IsValid() || from == to {
		return 0, domainerrors.ErrInvalidLanguage.WithDetails("source and target must be different supported languages")
	}

	created := 0

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewContentRepository()

		sources, err := repo.ListByLanguage(ctx, from)
		if err != nil {
			return err
		}

		for _, source := range sources {
			_, err := repo.FindByTypeAndLanguage(ctx, source.Type, to)
			if err == nil {
				srv.logger.Info("Skipping content, target language exists",
					slog.String("type", string(source.Type)),
					slog.String("language", string(to)))

				continue
			}
			if !errors.Is(err, repository.ErrContentNotFound) {
				return err
			}

			lang := to
			dup := &entity.Content{ID: uuid.New(), Type: source.Type, Language: &lang, Data: maps.Clone(source.Data)}
			if err := repo.Create(ctx, dup); err != nil {
				return errors.Wrapf(err, "failed to duplicate %s content", source.Type)
			}
			created++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to duplicate content")
	}

	srv.logger.Info("Content duplicated",
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Int("count", created))

	return created, nil
}
