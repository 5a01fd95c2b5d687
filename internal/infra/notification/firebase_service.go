package notification

import (
	"context"
	"fmt"
	"log/slog"

	"smartpay/config"
	"smartpay/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase Cloud Messaging client
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.DevicePushService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToTopic sends a high-priority data message so the device agent wakes up to apply it
func (s *firebaseService) SendToTopic(ctx context.Context, topic string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Topic: topic,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		// The messaging predicates need the unwrapped Firebase error.
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err) {
			return "", fmt.Errorf("failed to send message to topic %s: %w: %w", topic, service.ErrPushUnavailable, err)
		}

		return "", fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	return messageID, nil
}

// logOnlyService stands in for FCM when no credentials are configured.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendToTopic(ctx context.Context, topic string, data map[string]string) (string, error) {
	s.logger.InfoContext(ctx, "[LogOnlyPush] Message not sent, Firebase is not configured",
		slog.String("topic", topic),
		slog.Any("data", data),
	)

	return "log-only", nil
}

// Params holds dependencies for DevicePushService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDevicePushService picks FCM when credentials are configured and a logging stub otherwise.
func NewDevicePushService(params Params) (service.DevicePushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase credentials not configured, device pushes will only be logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
