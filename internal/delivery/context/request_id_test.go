package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithResource(t *testing.T) {
	t.Run("tags the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-1"))
		ctx := WithResource(WithLogger(context.Background(), logger), "Device")

		GetLoggerOrDefault(ctx, slog.Default()).Info("deleted")

		assert.Equal(t, "Device", GetResource(ctx))
		assert.Contains(t, buf.String(), "request_id=req-1")
		assert.Contains(t, buf.String(), "resource=Device")
	})

	t.Run("without a request logger", func(t *testing.T) {
		ctx := WithResource(context.Background(), "Plan")

		assert.Equal(t, "Plan", GetResource(ctx))
		assert.Nil(t, GetLogger(ctx))
		assert.Empty(t, GetRequestIDFromContext(ctx))
	})
}
