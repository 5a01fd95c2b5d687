package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smartpay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevicePushService_WithoutCredentialsLogsOnly(t *testing.T) {
	push, err := NewDevicePushService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, &logOnlyService{}, push)

	id, err := push.SendToTopic(context.Background(), "device-1", map[string]string{"action": "block"})
	require.NoError(t, err)
	assert.Equal(t, "log-only", id)
}
