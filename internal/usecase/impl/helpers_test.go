package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smartpay/config"
	mockRepo "smartpay/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: config.PaginationConfig{DefaultLimit: 100, MaxLimit: 1000},
		Analytics:  config.AnalyticsConfig{CustomerRole: "Cliente", VendorRole: "Vendedor"},
	}
}

// newPassthroughTxManager runs transactional callbacks inline.
func newPassthroughTxManager(t *testing.T) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()

	return txManager
}

func newTestCRUDParams(t *testing.T) CRUDParams {
	return CRUDParams{
		TxManager: newPassthroughTxManager(t),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}
}
