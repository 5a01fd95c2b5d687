package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "smartpay/internal/delivery/api/middleware"
	"smartpay/internal/delivery/api/validator"
	deliverycontext "smartpay/internal/delivery/context"
	"smartpay/internal/delivery/middleware"
	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCountryUsecase keeps countries in memory and records the last list options.
type fakeCountryUsecase struct {
	countries   map[uuid.UUID]*entity.Country
	lastOptions repository.ListOptions
	lastPatch   repository.Patch
	lastPreload []string
}

func newFakeCountryUsecase() *fakeCountryUsecase {
	return &fakeCountryUsecase{countries: map[uuid.UUID]*entity.Country{}}
}

func (f *fakeCountryUsecase) Get(_ context.Context, id uuid.UUID, preload ...string) (*entity.Country, error) {
	f.lastPreload = preload
	country, ok := f.countries[id]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithMessage("Country not found")
	}

	return country, nil
}

func (f *fakeCountryUsecase) List(_ context.Context, opts repository.ListOptions) ([]*entity.Country, error) {
	f.lastOptions = opts
	countries := make([]*entity.Country, 0, len(f.countries))
	for _, country := range f.countries {
		countries = append(countries, country)
	}

	return countries, nil
}

func (f *fakeCountryUsecase) Count(_ context.Context, opts repository.ListOptions) (int64, error) {
	f.lastOptions = opts

	return int64(len(f.countries)), nil
}

func (f *fakeCountryUsecase) Create(_ context.Context, in usecase.CountryCreate) (*entity.Country, error) {
	country := in.ToEntity()
	country.ID = uuid.New()
	f.countries[country.ID] = country

	return country, nil
}

func (f *fakeCountryUsecase) Update(_ context.Context, id uuid.UUID, in usecase.CountryUpdate) (*entity.Country, error) {
	country, ok := f.countries[id]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithMessage("Country not found")
	}
	f.lastPatch = in.Patch()
	if in.Name.Present() {
		country.Name = in.Name.Value
	}

	return country, nil
}

func (f *fakeCountryUsecase) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.countries[id]
	delete(f.countries, id)

	return ok, nil
}

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-test")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func setupCountries(t *testing.T) (*echo.Echo, *fakeCountryUsecase, *entity.Country) {
	t.Helper()

	uc := newFakeCountryUsecase()
	peru, err := uc.Create(context.Background(), usecase.CountryCreate{Name: "Peru", Code: "PE", Prefix: "+51"})
	require.NoError(t, err)

	e := newTestEcho()
	NewCRUDHandler[entity.Country, usecase.CountryCreate, usecase.CountryUpdate]("Country", uc).Register(e.Group("/countries"))

	return e, uc, peru
}

func TestCRUDHandler_Create(t *testing.T) {
	e, _, _ := setupCountries(t)

	t.Run("created", func(t *testing.T) {
		rec, env := do(t, e, http.MethodPost, "/countries", `{"name":"Colombia","code":"CO","prefix":"+57"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "req-test", env.Meta.RequestID)

		var country entity.Country
		require.NoError(t, json.Unmarshal(env.Data, &country))
		assert.Equal(t, "Colombia", country.Name)
		assert.NotEqual(t, uuid.Nil, country.ID)
	})

	t.Run("invalid payload", func(t *testing.T) {
		rec, env := do(t, e, http.MethodPost, "/countries", `{"name":"Colombia"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "code is required; prefix is required", env.Error.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, env := do(t, e, http.MethodPost, "/countries", `{"name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestCRUDHandler_Get(t *testing.T) {
	e, uc, peru := setupCountries(t)

	rec, env := do(t, e, http.MethodGet, "/countries/"+peru.ID.String()+"?preload=regions,regions__cities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"country_id":"`+peru.ID.String()+`","name":"Peru","code":"PE","prefix":"+51"}`, string(env.Data))
	assert.Equal(t, []string{"regions", "regions__cities"}, uc.lastPreload)

	rec, env = do(t, e, http.MethodGet, "/countries/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Country not found", env.Error.Message)

	rec, _ = do(t, e, http.MethodGet, "/countries/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCRUDHandler_List(t *testing.T) {
	e, uc, _ := setupCountries(t)

	rec, _ := do(t, e, http.MethodGet, "/countries?skip=5&limit=20&preload=regions&code=PE&name__in=Peru&name__in=Chile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.ListOptions{
		Offset:  5,
		Limit:   20,
		Filters: repository.Filters{"code": "PE", "name__in": "Peru,Chile"},
		Preload: []string{"regions"},
	}, uc.lastOptions)

	rec, env := do(t, e, http.MethodGet, "/countries?limit=ten", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid limit: must be an integer", env.Error.Message)
}

func TestCRUDHandler_Count(t *testing.T) {
	e, uc, _ := setupCountries(t)

	rec, env := do(t, e, http.MethodGet, "/countries/count?code=PE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, string(env.Data))
	assert.Equal(t, repository.ListOptions{Filters: repository.Filters{"code": "PE"}}, uc.lastOptions)
}

func TestCRUDHandler_CountByStore(t *testing.T) {
	e, uc, _ := setupCountries(t)
	h := NewCRUDHandler[entity.Country, usecase.CountryCreate, usecase.CountryUpdate]("Country", uc)
	e.GET("/stores/:id/countries/count", h.CountByStore)
	storeID := uuid.New()

	rec, env := do(t, e, http.MethodGet, "/stores/"+storeID.String()+"/countries/count?skip=3&code=PE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, string(env.Data))
	require.NotNil(t, uc.lastOptions.StoreID)
	assert.Equal(t, storeID, *uc.lastOptions.StoreID)
	assert.Equal(t, repository.Filters{"code": "PE"}, uc.lastOptions.Filters)
	assert.Zero(t, uc.lastOptions.Offset)

	rec, _ = do(t, e, http.MethodGet, "/stores/nope/countries/count", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCRUDHandler_Update(t *testing.T) {
	e, uc, peru := setupCountries(t)

	rec, _ := do(t, e, http.MethodPatch, "/countries/"+peru.ID.String(), `{"name":"Perú","prefix":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.Patch{"name": "Perú", "prefix": nil}, uc.lastPatch)

	rec, _ = do(t, e, http.MethodPatch, "/countries/"+uuid.NewString(), `{"name":"Chile"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCRUDHandler_Delete(t *testing.T) {
	e, _, peru := setupCountries(t)

	rec, _ := do(t, e, http.MethodDelete, "/countries/"+peru.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, env := do(t, e, http.MethodDelete, "/countries/"+peru.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Country not found", env.Error.Message)
}
