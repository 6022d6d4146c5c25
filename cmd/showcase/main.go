package main

import (
	"context"
	"log/slog"
	"os"

	"showcase/config"
	"showcase/internal/delivery"
	"showcase/internal/delivery/api"
	"showcase/internal/delivery/api/middleware"
	"showcase/internal/delivery/api/router/handler"
	"showcase/internal/delivery/api/upload"
	"showcase/internal/infra/auth"
	"showcase/internal/infra/cache"
	"showcase/internal/infra/contentdefaults"
	logs "showcase/internal/infra/log"
	"showcase/internal/infra/media"
	"showcase/internal/infra/persistence/postgres"
	"showcase/internal/infra/pubsub"
	"showcase/internal/infra/qrcode"
	"showcase/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		media.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewServiceRepository,
			postgres.NewPartnerRepository,
			postgres.NewCompanyInfoRepository,
			postgres.NewContentRepository,
			postgres.NewContactRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			contentdefaults.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewServiceOfferingService,
			impl.NewPartnerService,
			impl.NewCompanyInfoService,
			impl.NewContentService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			upload.NewStager,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewPartnerHandler,
			handler.NewCompanyInfoHandler,
			handler.NewContentHandler,
			handler.NewContactHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
