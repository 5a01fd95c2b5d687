package handler

import (
	"slices"

	"smartpay/internal/delivery/api/response"
	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

const (
	queryCountryID = "country_id"
	queryCategory  = "category"
)

// AccountTypeHandler adds country-aware listing and the category enum to the CRUD
// endpoints.
type AccountTypeHandler struct {
	*CRUDHandler[entity.AccountType, usecase.AccountTypeCreate, usecase.AccountTypeUpdate]
	uc usecase.AccountTypeUsecase
}

func NewAccountTypeHandler(uc usecase.AccountTypeUsecase) *AccountTypeHandler {
	return &AccountTypeHandler{
		CRUDHandler: NewCRUDHandler[entity.AccountType, usecase.AccountTypeCreate, usecase.AccountTypeUpdate]("Account type", uc),
		uc:          uc,
	}
}

func (h *AccountTypeHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/count", h.Count)
	g.GET("/categories", h.Categories)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List merges a country's account types with the international ones when country_id
// is given and falls back to the generic listing otherwise.
func (h *AccountTypeHandler) List(c echo.Context) error {
	if c.QueryParam(queryCountryID) == "" {
		return h.CRUDHandler.List(c)
	}

	countryID, err := queryUUID(c, queryCountryID)
	if err != nil {
		return err
	}
	categories, err := parseCategories(c)
	if err != nil {
		return err
	}

	accountTypes, err := h.uc.ListForCountry(h.requestContext(c), countryID, categories)
	if err != nil {
		return err
	}

	return response.OK(c, accountTypes)
}

func (h *AccountTypeHandler) Categories(c echo.Context) error {
	return response.OK(c, h.uc.Categories())
}

// StoreContactHandler adds the per-store listing to the CRUD endpoints.
type StoreContactHandler struct {
	*CRUDHandler[entity.StoreContact, usecase.StoreContactCreate, usecase.StoreContactUpdate]
	uc usecase.StoreContactUsecase
}

func NewStoreContactHandler(uc usecase.StoreContactUsecase) *StoreContactHandler {
	return &StoreContactHandler{
		CRUDHandler: NewCRUDHandler[entity.StoreContact, usecase.StoreContactCreate, usecase.StoreContactUpdate]("Store contact", uc),
		uc:          uc,
	}
}

// ListByStore serves /stores/:id/contacts?category=.
func (h *StoreContactHandler) ListByStore(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	categories, err := parseCategories(c)
	if err != nil {
		return err
	}

	contacts, err := h.uc.ListByStore(h.requestContext(c), storeID, categories)
	if err != nil {
		return err
	}

	return response.OK(c, contacts)
}

func parseCategories(c echo.Context) ([]entity.AccountCategory, error) {
	raw := splitList(c.QueryParams()[queryCategory])
	categories := lo.Map(raw, func(v string, _ int) entity.AccountCategory {
		return entity.AccountCategory(v)
	})

	for _, category := range categories {
		if !slices.Contains(entity.AccountCategories, category) {
			return nil, domainerrors.ErrValidation.WithMessagef("Unknown account category %q", category)
		}
	}

	return lo.Uniq(categories), nil
}
