package main

import (
	"context"
	"log/slog"
	"os"

	"smartpay/config"
	"smartpay/internal/delivery"
	"smartpay/internal/delivery/worker"
	"smartpay/internal/infra/formschema"
	logs "smartpay/internal/infra/log"
	"smartpay/internal/infra/notification"
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
		worker.Module,
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
			notification.NewDevicePushService,
			// Retrying a failed action republishes it.
			pubsub.NewEventPublisher,
			qrcode.NewFromConfig,
			formschema.NewValidator,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
