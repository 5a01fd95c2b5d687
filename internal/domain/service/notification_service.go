package service

import (
	"context"
	"errors"
)

// ErrPushUnavailable marks push failures worth retrying later.
var ErrPushUnavailable = errors.New("push provider temporarily unavailable")

// DevicePushService delivers data messages to enrolled devices and televisions.
type DevicePushService interface {
	// SendToTopic sends a data-only message to every installation subscribed to topic
	// and returns the provider message id.
	SendToTopic(ctx context.Context, topic string, data map[string]string) (string, error)
}
