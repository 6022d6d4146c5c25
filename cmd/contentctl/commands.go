package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"showcase/config"
	"showcase/internal/domain/entity"
	"showcase/internal/errors"
	"showcase/internal/infra/auth"
	"showcase/internal/infra/contentdefaults"
	logs "showcase/internal/infra/log"
	"showcase/internal/infra/persistence/postgres"
	"showcase/internal/usecase"
	"showcase/internal/usecase/impl"
	"showcase/internal/util"

	"gorm.io/gorm"
)

// session bundles what every subcommand needs.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openSession() (*session, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, db: db}, nil
}

func (s *session) Close() {
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		s.logger.Warn("Failed to close database", slog.Any("error", err))
	}
}

func (s *session) maintenance() usecase.ContentMaintenanceUsecase {
	return impl.NewContentMaintenanceService(impl.ContentMaintenanceParams{
		TxManager: postgres.NewTransactionManager(s.db),
		Defaults:  contentdefaults.New(s.cfg, s.logger),
		Logger:    s.logger,
	})
}

func runMigrateDB(ctx context.Context) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	if err := postgres.Migrate(ctx, s.db, s.logger); err != nil {
		return err
	}

	fmt.Printf("Migrations applied in %s\n", util.FormatDuration(time.Since(start)))

	return nil
}

func runLoad(ctx context.Context) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	results, err := s.maintenance().LoadDefaults(ctx)
	printResults(results)
	if err != nil {
		return errors.Wrap(err, "load interrupted")
	}

	fmt.Printf("Loaded %d blocks in %s\n", len(results), util.FormatDuration(time.Since(start)))

	return nil
}

func runMigrateLanguage(ctx context.Context) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.maintenance().MigrateLegacy(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Assigned %s to %d legacy records\n", entity.DefaultLanguage, n)

	return nil
}

func runDuplicate(ctx context.Context, from, to string) error {
	src, ok := entity.ParseLanguage(from)
	if !ok {
		return errors.Errorf("unsupported source language: %s", from)
	}
	dst, ok := entity.ParseLanguage(to)
	if !ok {
		return errors.Errorf("unsupported target language: %s", to)
	}
	if src == dst {
		return errors.New("source and target language must differ")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.maintenance().DuplicateLanguage(ctx, src, dst)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d %s records from %s\n", n, dst, src)

	return nil
}

func runSeedAdmin(ctx context.Context, name, email, password string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	tokens, err := auth.NewJWTService(s.cfg)
	if err != nil {
		return err
	}

	users := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     postgres.NewUserRepository(s.db),
		Hasher:       auth.NewBcryptHasher(s.cfg),
		TokenService: tokens,
		Logger:       s.logger,
	})

	user, err := users.Create(ctx, &usecase.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		IsAdmin:  true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Admin %s created with id %s\n", user.Email, user.ID)

	return nil
}

func printResults(results []usecase.ContentInitResult) {
	for _, r := range results {
		line := fmt.Sprintf("  %-16s %-3s %s", r.Type, r.Language, r.Status)
		if r.Error != "" {
			line += ": " + r.Error
		}
		fmt.Println(line)
	}
}
