package main

import (
	"context"
	"log/slog"
	"os"

	"smartpay/config"
	"smartpay/internal/delivery"
	"smartpay/internal/delivery/api"
	"smartpay/internal/infra/formschema"
	logs "smartpay/internal/infra/log"
	"smartpay/internal/infra/persistence/postgres"
	"smartpay/internal/infra/pubsub"
	"smartpay/internal/infra/qrcode"
	"smartpay/internal/usecase/impl"

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
		postgres.Module,
		injectService(),
		impl.Module,
		api.Module,
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewFromConfig,
			formschema.NewValidator,
			pubsub.NewEventPublisher,
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
