package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"smartpay/internal/domain/entity"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountTypeUsecase struct {
	usecase.AccountTypeUsecase

	countryID  uuid.UUID
	categories []entity.AccountCategory
}

func (f *fakeAccountTypeUsecase) ListForCountry(_ context.Context, countryID uuid.UUID, categories []entity.AccountCategory) ([]*entity.AccountType, error) {
	f.countryID = countryID
	f.categories = categories

	return []*entity.AccountType{{Name: "Nequi"}}, nil
}

func (f *fakeAccountTypeUsecase) Categories() []entity.AccountCategory {
	return entity.AccountCategories
}

func TestAccountTypeHandler(t *testing.T) {
	uc := &fakeAccountTypeUsecase{}
	e := newTestEcho()
	NewAccountTypeHandler(uc).Register(e.Group("/account-types"))

	countryID := uuid.New()

	t.Run("country listing", func(t *testing.T) {
		rec, _ := do(t, e, http.MethodGet, "/account-types?country_id="+countryID.String()+"&category=BANK_ACCOUNT,MOBILE_PAYMENT&category=BANK_ACCOUNT", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, countryID, uc.countryID)
		assert.Equal(t, []entity.AccountCategory{entity.CategoryBankAccount, entity.CategoryMobilePayment}, uc.categories)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec, env := do(t, e, http.MethodGet, "/account-types?country_id="+countryID.String()+"&category=CASH", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, `Unknown account category "CASH"`, env.Error.Message)
	})

	t.Run("bad country id", func(t *testing.T) {
		rec, _ := do(t, e, http.MethodGet, "/account-types?country_id=PE", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("categories", func(t *testing.T) {
		rec, env := do(t, e, http.MethodGet, "/account-types/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"PAYMENT_GATEWAY"`)
	})
}

type fakeAnalyticsUsecase struct {
	start time.Time
	end   *time.Time
}

func (f *fakeAnalyticsUsecase) DateRangeSummary(_ context.Context, start time.Time, end *time.Time) (*entity.DateRangeSummary, error) {
	f.start, f.end = start, end

	return &entity.DateRangeSummary{Customers: 3}, nil
}

func TestAnalyticsHandler_DateRange(t *testing.T) {
	uc := &fakeAnalyticsUsecase{}
	h := NewAnalyticsHandler(AnalyticsHandlerParams{
		AnalyticsUC: uc,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	e := newTestEcho()
	e.GET("/analytics/date-range", h.DateRange)

	rec, env := do(t, e, http.MethodGet, "/analytics/date-range?start_date=2024-03-01&end_date=2024-03-31", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"customers":3`)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), uc.start)
	require.NotNil(t, uc.end)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), *uc.end)

	rec, _ = do(t, e, http.MethodGet, "/analytics/date-range?start_date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.end)

	rec, _ = do(t, e, http.MethodGet, "/analytics/date-range", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, e, http.MethodGet, "/analytics/date-range?start_date=March", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
