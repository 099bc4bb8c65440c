package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"foodgram/config"
	"foodgram/internal/delivery"
	"foodgram/internal/delivery/api"
	apimiddleware "foodgram/internal/delivery/api/middleware"
	"foodgram/internal/delivery/api/router/handler"
	"foodgram/internal/infra/auth"
	logs "foodgram/internal/infra/log"
	"foodgram/internal/infra/persistence/postgres"
	"foodgram/internal/infra/qrcode"
	"foodgram/internal/infra/report"
	"foodgram/internal/infra/storage"
	"foodgram/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFollowRepository,
			postgres.NewRecipeRepository,
			postgres.NewMarkRepository,
			postgres.NewIngredientRepository,
			postgres.NewTagRepository,
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
			storage.NewImageStore,
			fx.Annotate(
				report.NewCSVRenderer,
				fx.ResultTags(`group:"shopping_list_renderers"`),
			),
			fx.Annotate(
				report.NewTextRenderer,
				fx.ResultTags(`group:"shopping_list_renderers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSubscriptionService,
			impl.NewRecipeService,
			impl.NewMarkService,
			impl.NewCatalogService,
			impl.NewShoppingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSubscriptionHandler,
			handler.NewCatalogHandler,
			handler.NewRecipeHandler,
			handler.NewMarkHandler,
			handler.NewShoppingHandler,
			handler.NewMediaHandler,
			handler.NewTestHandler,
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
				os.Exit(1)
			}
		}()
	}
}
