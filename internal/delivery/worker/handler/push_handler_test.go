package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartpay/config"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/service"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type fakeActionUsecase struct {
	usecase.ActionUsecase

	delivered *service.ActionEvent
	err       error
}

func (f *fakeActionUsecase) Deliver(_ context.Context, event *service.ActionEvent) error {
	f.delivered = event

	return f.err
}

func newTestPushHandler(cfg *config.Config, uc usecase.ActionUsecase) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ActionUC: uc,
	})
}

func pushBody(t *testing.T, event *service.ActionEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "m-1",
		},
		"subscription": "projects/p/subscriptions/actions",
	})
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()

	e := echo.New()
	e.POST("/push", h.HandlePush)
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ActionEvent{ActionID: "a1", Action: "block", DeviceID: "d1"}

	tests := []struct {
		name       string
		deliverErr error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "push provider unavailable is retried", deliverErr: errors.Wrap(service.ErrPushUnavailable, "fcm"), wantStatus: http.StatusServiceUnavailable},
		{name: "database failure is retried", deliverErr: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable},
		{name: "deleted action is acknowledged", deliverErr: domainerrors.ErrNotFound.WithMessage("Action not found"), wantStatus: http.StatusOK},
		{name: "action without target is acknowledged", deliverErr: domainerrors.ErrValidation, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeActionUsecase{err: tt.deliverErr}
			h := newTestPushHandler(&config.Config{}, uc)

			rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-9"}), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, uc.delivered)
			assert.Equal(t, "a1", uc.delivered.ActionID)
			assert.Equal(t, "req-9", uc.delivered.RequestID)
		})
	}
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	uc := &fakeActionUsecase{}
	h := newTestPushHandler(&config.Config{}, uc)

	rec := servePush(h, `{"message":{"data":"***"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.delivered)
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google", PushAudience: "https://worker.example.com/push"}}
	cfg.Env.Env = "production"

	uc := &fakeActionUsecase{}
	h := newTestPushHandler(cfg, uc)

	var gotAudience string
	h.verifyToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	body := pushBody(t, &service.ActionEvent{ActionID: "a1"}, nil)

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
	require.NotNil(t, uc.delivered)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "develop"

	assert.False(t, newTestPushHandler(cfg, &fakeActionUsecase{}).verifyPushAuth)
}
